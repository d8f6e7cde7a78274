package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"unicode/utf8"

	"aqcalc/internal/language"
)

// maxSheetNameLength is the spreadsheet limit on worksheet names.
const maxSheetNameLength = 31

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSegment(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSegment() error {
	if _, ok := language.Model(c.Segment.Language); !ok {
		return fmt.Errorf("segment.language: no sentence model for %q (supported: %s)", c.Segment.Language, strings.Join(language.Supported(), ", "))
	}
	return nil
}

func (c *Config) validateExport() error {
	if c.Export.Dir == "" {
		return errors.New("export.dir must be set")
	}
	name := c.Export.SheetName
	if utf8.RuneCountInString(name) > maxSheetNameLength {
		return fmt.Errorf("export.sheet_name must be at most %d characters", maxSheetNameLength)
	}
	if strings.ContainsAny(name, `:\/?*[]`) {
		return fmt.Errorf("export.sheet_name %q contains characters not allowed in sheet names", name)
	}
	return nil
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind: %w", err)
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New("server.max_body_bytes must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
