// Package server hosts the calculator over HTTP.
//
// It accepts JSON score requests, returns the ordered results, and serves the
// spreadsheet and text exports as attachments. Every request runs the
// pipeline with its own run ID, echoed in the X-Request-ID header.
package server
