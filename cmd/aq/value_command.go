package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newValueCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "value TEXT...",
		Short: "Print the AQ value of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFmt, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			p, err := ctx.newPipeline(cmd)
			if err != nil {
				return err
			}
			rs, err := p.ScoreUnits(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := writeResult(cmd, outFmt, rs, "Text"); err != nil {
				return err
			}
			if len(rs.Failures) > 0 {
				errs := make([]error, 0, len(rs.Failures))
				for _, f := range rs.Failures {
					errs = append(errs, f.Err())
				}
				return fmt.Errorf("%d of %d values could not be computed: %w", len(rs.Failures), len(args), errors.Join(errs...))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(formatTable), "Output format: table, plain, json or yaml")
	return cmd
}
