package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"aqcalc/internal/config"
	"aqcalc/internal/language"
	"aqcalc/internal/logging"
	"aqcalc/internal/pipeline"
	"aqcalc/internal/segment"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// log returns the process logger, building it from config on first use.
// Logger construction failures fall back to a no-op logger with a warning.
func (c *commandContext) log(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warn: unable to initialize logger: %v\n", err)
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// newPipeline builds a pipeline whose sentence splitter uses the configured
// language model.
func (c *commandContext) newPipeline(cmd *cobra.Command) (*pipeline.Pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	punkt, err := segment.NewPunkt(cfg.Segment.Language)
	if err != nil {
		return nil, err
	}
	logger := c.log(cmd)
	logger.Debug("sentence model loaded",
		logging.String("language", punkt.Language()),
		logging.String("language_name", language.DisplayName(punkt.Language())),
	)
	return pipeline.New(segment.New(punkt), pipeline.WithLogger(logger)), nil
}

// resolveMode parses value, falling back to the configured default when the
// flag was left empty.
func (c *commandContext) resolveMode(value string) (segment.Mode, error) {
	if strings.TrimSpace(value) != "" {
		return segment.ParseMode(value)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return segment.LineMode, err
	}
	return cfg.DefaultMode(), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
