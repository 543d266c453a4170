// Package logger configures log/slog for the tuple tooling and carries a
// logger through a context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// configMutex serializes ConfigureLoggingWithOptions, which replaces
// process-wide defaults.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const loggerKey contextKey = "logger"

// Options is used to configure logging.
type Options struct {
	// Subsystem, when set, is attached to every record as "subsystem".
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// New builds a logger from opts without touching global state.
// A nil Output means stdout.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)

	if opts.Subsystem != "" {
		logger = logger.With("subsystem", opts.Subsystem)
	}

	return logger
}

// ConfigureLoggingWithOptions builds a logger from opts and installs it as
// the slog default, which also routes the legacy log package through it.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	logger := New(opts)

	slog.SetDefault(logger)

	return logger
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Get returns the logger stored in ctx, or slog.Default() if there is none.
func Get(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}

	return slog.Default()
}
