// Package logging configures the logrus logger shared by dmenu-desktop.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lvim-tech/dmenu-desktop/pkg/utils"
)

// LevelEnv overrides the configured log level
const LevelEnv = "DMENU_DESKTOP_LOG_LEVEL"

// Config is the [log] section of the config file
type Config struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" (default) or "json"
}

// Option configures a logger
type Option func(*logrus.Logger)

// WithOutput sets the logger output
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithLevel sets the log level
func WithLevel(level logrus.Level) Option {
	return func(l *logrus.Logger) {
		l.SetLevel(level)
	}
}

// New creates a logger writing to stderr. The level comes from LevelEnv,
// then cfg.Level, then defaults to warn; options are applied last.
func New(cfg Config, opts ...Option) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	levelStr := "warn"
	if env := os.Getenv(LevelEnv); env != "" {
		levelStr = env
	} else if cfg.Level != "" {
		levelStr = cfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			ForceColors:      utils.IsTerminal(os.Stderr),
		})
	}

	for _, opt := range opts {
		opt(logger)
	}

	return logger
}

// Component returns an entry tagged with the component name
func Component(logger logrus.FieldLogger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}
