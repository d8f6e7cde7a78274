package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"aqcalc/internal/export"
	"aqcalc/internal/pipeline"
)

// maxUnitWidth wraps long sentences so the value column stays on screen.
const maxUnitWidth = 72

// renderResultTable lays units out as two columns: the unit text under label
// and its value, right-aligned, under "AQ Value". Whitespace runs inside a
// unit collapse to single spaces so each unit stays on one logical row.
func renderResultTable(label string, units []pipeline.Unit) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{label, export.ValueHeader})

	total := 0
	for _, u := range units {
		tw.AppendRow(table.Row{strings.Join(strings.Fields(u.Text), " "), strconv.Itoa(u.Value)})
		total += u.Value
	}
	if len(units) > 1 {
		tw.AppendFooter(table.Row{strconv.Itoa(len(units)) + " units", strconv.Itoa(total)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: maxUnitWidth, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
