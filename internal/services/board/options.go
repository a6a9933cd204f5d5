package board

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
)

const (
	// DefaultLatency is the simulated round-trip of every store operation
	DefaultLatency = 300 * time.Millisecond

	// DefaultItemIDStart keeps item ids clear of board ids in shared displays
	DefaultItemIDStart = 100
)

// Option is a functional option for configuring a BoardStore
type Option func(*storeConfig)

// storeConfig holds the configuration for BoardStore initialization
type storeConfig struct {
	latency      time.Duration
	orphanPolicy OrphanPolicy
	publisher    events.Publisher
	logger       *slog.Logger
	clock        func() time.Time
	itemIDStart  int
}

func defaultStoreConfig() storeConfig {
	return storeConfig{
		latency:      DefaultLatency,
		orphanPolicy: OrphanAllow,
		logger:       slog.Default(),
		clock:        time.Now,
		itemIDStart:  DefaultItemIDStart,
	}
}

// WithLatency sets the simulated delay. Zero or negative disables it.
func WithLatency(d time.Duration) Option {
	return func(cfg *storeConfig) {
		cfg.latency = d
	}
}

// WithOrphanPolicy sets how CreateItem treats a groupId no group matches
func WithOrphanPolicy(p OrphanPolicy) Option {
	return func(cfg *storeConfig) {
		cfg.orphanPolicy = p
	}
}

// WithPublisher sets the event publisher notified after each mutation
func WithPublisher(p events.Publisher) Option {
	return func(cfg *storeConfig) {
		cfg.publisher = p
	}
}

// WithLogger sets the logger for the store
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *storeConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock replaces the wall clock used for timestamps
func WithClock(clock func() time.Time) Option {
	return func(cfg *storeConfig) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// WithItemIDStart sets the first item id issued when the seed holds no larger id
func WithItemIDStart(n int) Option {
	return func(cfg *storeConfig) {
		cfg.itemIDStart = n
	}
}
