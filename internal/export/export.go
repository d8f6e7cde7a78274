package export

import (
	"errors"
	"fmt"
	"strings"

	"aqcalc/internal/pipeline"
)

// Format identifies an artifact type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatText Format = "txt"
)

const (
	// XLSXMIME is the media type of spreadsheet artifacts.
	XLSXMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// TextMIME is the media type of text artifacts.
	TextMIME = "text/plain; charset=utf-8"
	// ValueHeader labels the score column.
	ValueHeader = "AQ Value"

	defaultBasename  = "aq_values"
	defaultSheetName = "Sheet1"
)

// ErrExport matches every *ExportError.
var ErrExport = errors.New("export failed")

// ExportError reports a serialization failure for one format.
type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() []error { return []error{ErrExport, e.Err} }

// Options controls artifact naming.
type Options struct {
	Basename  string
	SheetName string
}

func (o Options) basename() string {
	if b := strings.TrimSpace(o.Basename); b != "" {
		return b
	}
	return defaultBasename
}

func (o Options) sheetName() string {
	if s := strings.TrimSpace(o.SheetName); s != "" {
		return s
	}
	return defaultSheetName
}

// Artifact is one serialized result ready to be downloaded or written.
type Artifact struct {
	Format   Format
	FileName string
	MIME     string
	Data     []byte
}

// FileName returns the artifact file name for format.
func (o Options) FileName(format Format) string {
	return o.basename() + "." + string(format)
}

// Build serializes rs in the requested format.
func Build(rs *pipeline.ResultSet, format Format, opts Options) (Artifact, error) {
	art := Artifact{Format: format, FileName: opts.FileName(format)}
	switch format {
	case FormatXLSX:
		data, err := XLSX(rs, opts.sheetName())
		if err != nil {
			return Artifact{}, err
		}
		art.MIME = XLSXMIME
		art.Data = data
	case FormatText:
		art.MIME = TextMIME
		art.Data = Text(rs)
	default:
		return Artifact{}, &ExportError{Format: format, Err: errors.New("unsupported format")}
	}
	return art, nil
}

// ParseFormat maps a file extension or format name to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), ".")) {
	case "xlsx", "excel", "spreadsheet":
		return FormatXLSX, nil
	case "txt", "text", "plain":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown export format %q", value)
	}
}
