// Package logger builds the application's zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"ProjectUploadService/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const serviceName = "upload-service"

// New returns the root logger configured from cfg.
//
// Errors wrapped with github.com/pkg/errors get their stack rendered when the
// event is built with Stack().
func New(cfg config.LogConfig, env string) zerolog.Logger {
	return NewWithWriter(cfg, env, output(cfg))
}

// NewWithWriter is New with an explicit destination, used by tests.
func NewWithWriter(cfg config.LogConfig, env string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("env", env).
		Str("host", hostname()).
		Logger()
}

func output(cfg config.LogConfig) io.Writer {
	if cfg.Format == "json" {
		return os.Stdout
	}
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
