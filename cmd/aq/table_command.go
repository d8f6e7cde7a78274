package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"aqcalc/internal/export"
	"aqcalc/internal/qabbala"
)

type tableEntry struct {
	Char  string `json:"char" yaml:"char"`
	Value int    `json:"value" yaml:"value"`
}

func newTableCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:         "table",
		Short:       "List the value of every letter and digit",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFmt, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			entries := qabbala.Entries()
			rows := make([]tableEntry, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, tableEntry{Char: string(e.Char), Value: e.Value})
			}
			switch outFmt {
			case formatJSON:
				return writeJSON(cmd, rows)
			case formatYAML:
				return writeYAML(cmd, rows)
			case formatPlain:
				for _, r := range rows {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", r.Char, r.Value)
				}
				return nil
			default:
				fmt.Fprintln(cmd.OutOrStdout(), renderValueTable(rows))
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(formatTable), "Output format: table, plain, json or yaml")
	return cmd
}

func renderValueTable(rows []tableEntry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"Char", export.ValueHeader})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Char, strconv.Itoa(r.Value)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
