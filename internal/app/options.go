package app

import (
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/services/board"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger       *slog.Logger
	bufferSize   int
	storeOptions []board.Option
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithEventBufferSize sets the per-subscriber event queue length
func WithEventBufferSize(n int) Option {
	return func(cfg *appConfig) {
		cfg.bufferSize = n
	}
}

// WithStoreOptions appends options applied after the ones derived from config
func WithStoreOptions(opts ...board.Option) Option {
	return func(cfg *appConfig) {
		cfg.storeOptions = append(cfg.storeOptions, opts...)
	}
}
