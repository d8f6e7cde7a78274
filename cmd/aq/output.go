package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aqcalc/internal/export"
	"aqcalc/internal/pipeline"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatPlain outputFormat = "plain"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

func parseOutputFormat(value string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return formatTable, nil
	case formatTable, formatPlain, formatJSON, formatYAML:
		return f, nil
	case "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, plain, json or yaml)", value)
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML encodes v as YAML to the command's stdout.
func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeResult prints rs in format. label heads the unit column of the table.
func writeResult(cmd *cobra.Command, format outputFormat, rs *pipeline.ResultSet, label string) error {
	switch format {
	case formatJSON:
		return writeJSON(cmd, rs)
	case formatYAML:
		return writeYAML(cmd, rs)
	case formatPlain:
		for _, unit := range rs.Units {
			fmt.Fprintln(cmd.OutOrStdout(), export.Line(unit))
		}
	default:
		if rs.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No units to score")
			break
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderResultTable(label, rs.Units))
	}
	if format == formatTable || format == formatPlain {
		for _, failure := range rs.Failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "warn: unit %d not scored: %s\n", failure.Index+1, failure.Error)
		}
	}
	return nil
}
