package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"aqcalc/internal/config"
)

// Output names that map to the process streams instead of files.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Outputs lists "stdout", "stderr" or file paths. Empty means Fallback.
	Outputs []string
	// Fallback receives output when Outputs is empty and replaces "stderr".
	// Nil means os.Stderr.
	Fallback io.Writer
}

// New constructs a slog logger. Output defaults to stderr so results written
// to stdout stay machine-readable. Source locations are attached at debug
// level.
func New(opts Options) (*slog.Logger, error) {
	level := new(slog.LevelVar)
	level.Set(parseLevel(opts.Level))
	addSource := level.Level() <= slog.LevelDebug

	w, err := openOutputs(opts.Outputs, opts.Fallback)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		return slog.New(newJSONHandler(w, level, addSource)), nil
	case "console", "":
		return slog.New(newConsoleHandler(w, level, addSource)), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
}

// NewFromConfig creates a logger from the [logging] section. fallback is the
// stream used when no outputs are configured; nil means os.Stderr.
func NewFromConfig(cfg *config.Config, fallback io.Writer) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Fallback: fallback})
	}
	return New(Options{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		Outputs:  cfg.Logging.Outputs,
		Fallback: fallback,
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutputs(outputs []string, fallback io.Writer) (io.Writer, error) {
	if fallback == nil {
		fallback = os.Stderr
	}
	seen := make(map[string]bool, len(outputs))
	var writers []io.Writer
	var files []*os.File
	fail := func(err error) (io.Writer, error) {
		for _, f := range files {
			_ = f.Close()
		}
		return nil, err
	}
	for _, out := range outputs {
		out = strings.TrimSpace(out)
		if out == "" || seen[out] {
			continue
		}
		seen[out] = true

		switch out {
		case OutputStdout:
			writers = append(writers, os.Stdout)
		case OutputStderr:
			writers = append(writers, fallback)
		default:
			if dir := filepath.Dir(out); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fail(fmt.Errorf("create log directory %s: %w", dir, err))
				}
			}
			file, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fail(fmt.Errorf("open log file %s: %w", out, err))
			}
			files = append(files, file)
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return fallback, nil
	case 1:
		return writers[0], nil
	default:
		return io.MultiWriter(writers...), nil
	}
}
