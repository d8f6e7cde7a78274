// Package main hosts the aq CLI entrypoint and command graph.
//
// The Cobra command tree scores files or piped text, prints the results as a
// table or in a machine-readable format, writes the spreadsheet and text
// exports, and runs the HTTP host. Configuration resolution and logger setup
// live in the shared command context so subcommands only deal with their own
// flags.
package main
