package config

import (
	"fmt"
	"slices"

	"guessnerd/internal/logging"

	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" env:"GUESS_LOG_LEVEL"`         // debug, info, warn, error
	Format     string          `yaml:"format" env:"GUESS_LOG_FORMAT"`       // json, text
	File       string          `yaml:"file,omitempty" env:"GUESS_LOG_FILE"` // empty = stderr
	DebugMode  bool            `yaml:"debug_mode" env:"GUESS_DEBUG"`        // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories,omitempty"`                // Per-category toggles
}

// Options converts the config for logging.Initialize, which owns the
// category rules.
func (c LoggingConfig) Options() logging.Options {
	return logging.Options{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		JSONFormat: c.Format == "json",
		File:       c.File,
		Categories: c.Categories,
	}
}

// Validate checks level and format.
func (c LoggingConfig) Validate() error {
	if c.Level != "" {
		if _, err := zapcore.ParseLevel(c.Level); err != nil {
			return fmt.Errorf("invalid log level: %s", c.Level)
		}
	}
	if c.Format != "" && !slices.Contains(ValidLogFormat, c.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Format, ValidLogFormat)
	}
	return nil
}
