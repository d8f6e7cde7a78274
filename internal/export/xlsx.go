package export

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"aqcalc/internal/pipeline"
	"aqcalc/internal/segment"
)

// XLSX renders rs as a single-sheet workbook. Row 1 holds the headers
// (the mode's unit label and "AQ Value"); each unit follows in order.
// A unit longer than a spreadsheet cell can hold fails the export instead
// of being stored truncated next to the value of its full text.
func XLSX(rs *pipeline.ResultSet, sheet string) ([]byte, error) {
	if sheet == "" {
		sheet = defaultSheetName
	}
	mode := segment.LineMode
	if rs != nil {
		mode = rs.Mode
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheet); err != nil {
			return nil, xlsxError(fmt.Errorf("name sheet %q: %w", sheet, err))
		}
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, xlsxError(fmt.Errorf("open stream writer: %w", err))
	}
	if err := sw.SetRow("A1", []interface{}{mode.UnitLabel(), ValueHeader}); err != nil {
		return nil, xlsxError(fmt.Errorf("write header: %w", err))
	}
	for i := 0; i < rs.Len(); i++ {
		u := rs.Units[i]
		if n := utf8.RuneCountInString(u.Text); n > excelize.TotalCellChars {
			return nil, xlsxError(fmt.Errorf("row %d: unit text has %d characters, cell limit is %d", i+2, n, excelize.TotalCellChars))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, xlsxError(err)
		}
		if err := sw.SetRow(cell, []interface{}{u.Text, u.Value}); err != nil {
			return nil, xlsxError(fmt.Errorf("write row %d: %w", i+2, err))
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, xlsxError(fmt.Errorf("flush rows: %w", err))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, xlsxError(fmt.Errorf("encode workbook: %w", err))
	}
	return buf.Bytes(), nil
}

func xlsxError(err error) error {
	return &ExportError{Format: FormatXLSX, Err: err}
}
