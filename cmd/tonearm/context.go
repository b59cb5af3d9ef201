package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tonearm/internal/config"
	"tonearm/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	runID      string
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
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
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger, honoring the config file values
// with command line overrides. Every log line carries a run identifier so
// interleaved runs against the same destination stay distinguishable.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	c.loggerOnce.Do(func() {
		level := cfg.Logging.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = strings.TrimSpace(*c.logLevelFlag)
		}
		format := cfg.Logging.Format
		if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
			format = strings.TrimSpace(*c.logFormatFlag)
		}

		logger, loggerErr := logging.New(logging.Options{
			Level:  level,
			Format: format,
			Writer: os.Stderr,
		})
		if loggerErr != nil {
			c.configErr = loggerErr
			return
		}
		c.runID = strings.SplitN(uuid.NewString(), "-", 2)[0]
		c.logger = logger.With(logging.String(logging.FieldRunID, c.runID))
	})
	if c.logger == nil {
		return nil, c.configErr
	}
	return c.logger, nil
}
