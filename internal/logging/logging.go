// Package logging builds the hclog loggers used by the command line tools.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// LogConfig represents logging configuration.
type LogConfig struct {
	LogLevel      string
	LogColor      bool
	LogForceColor bool
	LogAsJSON     bool

	// Output defaults to os.Stderr
	Output io.Writer
}

// NewLogger returns a new configured logger.
func NewLogger(name string, logConfig *LogConfig) hclog.Logger {
	if logConfig == nil {
		logConfig = &LogConfig{}
	}

	loggerColorOption := hclog.ColorOff
	if logConfig.LogColor {
		loggerColorOption = hclog.AutoColor
	}
	if logConfig.LogForceColor {
		loggerColorOption = hclog.ForceColor
	}

	level := hclog.LevelFromString(logConfig.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.LevelFromString(DefaultLevel)
	}

	output := logConfig.Output
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     output,
		Color:      loggerColorOption,
		JSONFormat: logConfig.LogAsJSON,
	})
}
