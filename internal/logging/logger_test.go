package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aqcalc/internal/config"
	"aqcalc/internal/logging"
)

func TestNewFromConfigWritesToFallback(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"

	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "INFO  shown") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewFromConfigFileOutput(t *testing.T) {
	cfg := config.Default()
	logPath := filepath.Join(t.TempDir(), "logs", "aq.log")
	cfg.Logging.Outputs = []string{logPath}

	logger, err := logging.NewFromConfig(&cfg, nil)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("to file")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "WARN  to file") {
		t.Fatalf("unexpected file content %q", content)
	}
}

func TestNewClosesOpenedFilesOnOutputError(t *testing.T) {
	if _, err := os.Stat("/proc/self/fd"); err != nil {
		t.Skip("open descriptor count unavailable")
	}
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	outputs := []string{
		filepath.Join(dir, "first.log"),
		filepath.Join(dir, "second.log"),
		filepath.Join(blocker, "nested", "third.log"),
	}

	before := countOpenFDs(t)
	for range 5 {
		if _, err := logging.New(logging.Options{Outputs: outputs}); err == nil {
			t.Fatal("expected error for a log path under a regular file")
		}
	}
	if after := countOpenFDs(t); after > before {
		t.Fatalf("open descriptors grew from %d to %d", before, after)
	}
}

func countOpenFDs(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Fatalf("read fd dir: %v", err)
	}
	return len(entries)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleLineShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Fallback: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithRunID(context.Background(), "1a2b3c4d-0000-4000-8000-000000000000")
	componentLogger := logging.NewComponentLogger(logger, "pipeline")
	logging.WithContext(ctx, componentLogger).Info("units scored",
		logging.Int("units", 3),
		logging.String("text", "two words"),
		logging.Error(errors.New("boom")),
	)

	line := buf.String()
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
	want := `INFO  pipeline [1a2b3c4d]: units scored units=3 text="two words" error=boom`
	if !strings.Contains(line, want) {
		t.Fatalf("console line %q does not contain %q", line, want)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no colour codes for a non-terminal writer: %q", line)
	}
}

func TestConsoleGroupsFlatten(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Fallback: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.WithGroup("export").Info("written", logging.String("format", "xlsx"))
	if !strings.Contains(buf.String(), "export.format=xlsx") {
		t.Fatalf("expected dotted group key, got %q", buf.String())
	}
}

func TestConsoleIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Fallback: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestJSONLoggerCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Fallback: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithRunID(context.Background(), "run-123")
	logging.WithContext(ctx, logger).Warn("unit failed")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode json log %q: %v", buf.String(), err)
	}
	if record["run_id"] != "run-123" {
		t.Fatalf("expected run_id, got %v", record)
	}
	if record["level"] != "warn" || record["msg"] != "unit failed" {
		t.Fatalf("unexpected record %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
}

func TestRunIDFromContext(t *testing.T) {
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	ctx := logging.WithRunID(context.Background(), "  ")
	if _, ok := logging.RunIDFromContext(ctx); ok {
		t.Fatal("expected blank run id to be ignored")
	}
	ctx = logging.WithRunID(context.Background(), "abc")
	if id, ok := logging.RunIDFromContext(ctx); !ok || id != "abc" {
		t.Fatalf("RunIDFromContext = %q, %v", id, ok)
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "test")
	logger.Error("discarded")
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("expected nop logger to be disabled")
	}
}
