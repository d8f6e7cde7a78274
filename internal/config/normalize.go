package config

import (
	"fmt"
	"os"
	"strings"

	"aqcalc/internal/language"
	"aqcalc/internal/segment"
	"aqcalc/internal/textutil"
)

func (c *Config) normalize() error {
	if err := c.normalizeSegment(); err != nil {
		return err
	}
	if err := c.normalizeExport(); err != nil {
		return err
	}
	c.normalizeServer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeSegment() error {
	c.Segment.Mode = strings.TrimSpace(c.Segment.Mode)
	if c.Segment.Mode == "" {
		c.Segment.Mode = defaultSegmentMode
	}
	mode, err := segment.ParseMode(c.Segment.Mode)
	if err != nil {
		return fmt.Errorf("segment.mode: %w", err)
	}
	c.Segment.Mode = mode.String()

	c.Segment.Language = strings.TrimSpace(c.Segment.Language)
	if c.Segment.Language == "" {
		c.Segment.Language = defaultLanguage
	}
	if code := language.ToISO2(c.Segment.Language); code != "" {
		c.Segment.Language = code
	}
	return nil
}

func (c *Config) normalizeExport() error {
	if strings.TrimSpace(c.Export.Dir) == "" {
		if value, ok := os.LookupEnv("AQ_EXPORT_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Export.Dir = strings.TrimSpace(value)
		} else {
			c.Export.Dir = defaultExportDir
		}
	}
	var err error
	if c.Export.Dir, err = expandPath(c.Export.Dir); err != nil {
		return fmt.Errorf("export.dir: %w", err)
	}
	c.Export.Basename = textutil.SanitizeFileName(c.Export.Basename)
	if c.Export.Basename == "" {
		c.Export.Basename = defaultBasename
	}
	c.Export.SheetName = strings.TrimSpace(c.Export.SheetName)
	if c.Export.SheetName == "" {
		c.Export.SheetName = defaultSheetName
	}
	return nil
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		if value, ok := os.LookupEnv("AQ_SERVER_BIND"); ok && strings.TrimSpace(value) != "" {
			c.Server.Bind = strings.TrimSpace(value)
		} else {
			c.Server.Bind = defaultServerBind
		}
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = defaultMaxBodyBytes
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv("AQ_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		} else {
			c.Logging.Level = defaultLogLevel
		}
	}
	outputs := c.Logging.Outputs[:0]
	for _, out := range c.Logging.Outputs {
		if trimmed := strings.TrimSpace(out); trimmed != "" {
			outputs = append(outputs, trimmed)
		}
	}
	c.Logging.Outputs = outputs
}
