package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"aqcalc/internal/config"
	"aqcalc/internal/export"
	"aqcalc/internal/fileutil"
	"aqcalc/internal/logging"
	"aqcalc/internal/pipeline"
)

type scoreOptions struct {
	mode     string
	format   string
	export   bool
	outDir   string
	xlsxPath string
	txtPath  string
}

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var opts scoreOptions

	cmd := &cobra.Command{
		Use:   "score [FILE]",
		Short: "Score each line or sentence of a file or stdin",
		Long: `Score each line (poetry) or sentence (prose) of FILE, or of stdin when FILE
is omitted or "-". Results are printed before any export is written; a failed
export makes the command exit non-zero after the results are shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(opts.format)
			if err != nil {
				return err
			}
			mode, err := ctx.resolveMode(opts.mode)
			if err != nil {
				return err
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			p, err := ctx.newPipeline(cmd)
			if err != nil {
				return err
			}
			rs, err := p.Run(cmd.Context(), text, mode)
			if err != nil {
				return err
			}
			if err := writeResult(cmd, format, rs, mode.UnitLabel()); err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			targets, err := opts.exportTargets(cfg)
			if err != nil {
				return err
			}
			return writeExports(cmd, ctx, rs, cfg, targets)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Segmentation mode: line (poetry) or sentence (prose); defaults to segment.mode")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(formatTable), "Output format: table, plain, json or yaml")
	cmd.Flags().BoolVar(&opts.export, "export", false, "Write both the xlsx and txt exports into --out-dir")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", "", "Directory for --export artifacts (defaults to export.dir)")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "Write the spreadsheet export to this path")
	cmd.Flags().StringVar(&opts.txtPath, "txt", "", "Write the text export to this path")
	return cmd
}

type exportTarget struct {
	format export.Format
	path   string
}

func (o scoreOptions) exportTargets(cfg *config.Config) ([]exportTarget, error) {
	var targets []exportTarget
	if o.export {
		dir := strings.TrimSpace(o.outDir)
		if dir == "" {
			dir = cfg.Export.Dir
		}
		dir, err := config.ExpandPath(dir)
		if err != nil {
			return nil, fmt.Errorf("resolve export dir: %w", err)
		}
		names := exportOptions(cfg)
		for _, format := range []export.Format{export.FormatXLSX, export.FormatText} {
			targets = append(targets, exportTarget{format: format, path: filepath.Join(dir, names.FileName(format))})
		}
	}
	for _, explicit := range []exportTarget{
		{format: export.FormatXLSX, path: o.xlsxPath},
		{format: export.FormatText, path: o.txtPath},
	} {
		if strings.TrimSpace(explicit.path) == "" {
			continue
		}
		expanded, err := config.ExpandPath(explicit.path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s path: %w", explicit.format, err)
		}
		targets = append(targets, exportTarget{format: explicit.format, path: expanded})
	}
	return targets, nil
}

func exportOptions(cfg *config.Config) export.Options {
	return export.Options{
		Basename:  cfg.Export.Basename,
		SheetName: cfg.Export.SheetName,
	}
}

// writeExports builds and writes every target. A failure does not stop the
// remaining targets; all failures are returned together.
func writeExports(cmd *cobra.Command, ctx *commandContext, rs *pipeline.ResultSet, cfg *config.Config, targets []exportTarget) error {
	logger := logging.NewComponentLogger(ctx.log(cmd), "export").With(logging.String(logging.FieldRunID, rs.RunID))
	var errs []error
	for _, target := range targets {
		art, err := export.Build(rs, target.format, exportOptions(cfg))
		if err == nil {
			err = fileutil.WriteFileAtomic(target.path, art.Data, 0o644)
		}
		if err != nil {
			logger.Error("export failed", logging.String("format", string(target.format)), logging.Error(err))
			errs = append(errs, fmt.Errorf("write %s export %s: %w", target.format, target.path, err))
			continue
		}
		logger.Info("export written",
			logging.String("format", string(target.format)),
			logging.String("path", target.path),
			logging.Int("bytes", len(art.Data)),
		)
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s export to %s\n", target.format, target.path)
	}
	return errors.Join(errs...)
}

// readInput returns the contents of path, or of stdin for "-". An
// interactive terminal on stdin is refused rather than waited on.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	in := cmd.InOrStdin()
	if file, ok := in.(*os.File); ok {
		fd := file.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return "", errors.New("no input: pass a FILE argument or pipe text on stdin")
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
