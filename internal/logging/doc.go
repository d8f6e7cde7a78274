// Package logging assembles structured slog loggers and formatting helpers used
// across the calculator's CLI and HTTP host.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so pipeline and server code can tag log
// lines with the run ID of the request being processed. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
