// Package export serializes a pipeline.ResultSet into downloadable artifacts.
//
// Two formats are produced as in-memory buffers: a single-sheet spreadsheet
// (aq_values.xlsx) with a unit column and an "AQ Value" column, and a UTF-8
// text listing (aq_values.txt) with one "<text> | AQ Value: <n>" line per
// unit. Neither serializer touches the filesystem or mutates its input;
// callers decide where the bytes go.
//
// Serialization failures are returned as *ExportError so callers can tell
// them apart from scoring failures and still show the computed results.
package export
