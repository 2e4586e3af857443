// Package logging configures the logrus logger shared by the CLI and the HTTP server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options control logger construction
type Options struct {
	Level  string    // logrus level name, defaults to info
	Format string    // "text" or "json", defaults to text
	Out    io.Writer // defaults to stderr
}

// New builds a logger from options. An unknown level or format is an error.
func New(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()

	logger.Out = opts.Out
	if logger.Out == nil {
		logger.Out = os.Stderr
	}

	level := opts.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(parsed)

	switch strings.ToLower(opts.Format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	if os.Getenv("LOGGING_ENABLE_CALLER_TRACE") == "true" {
		logger.SetReportCaller(true)
	}

	return logger, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}
