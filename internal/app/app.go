package app

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/seed"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Event system for live updates
	Events *events.Bus

	// Service layer
	Boards board.Service

	Config *config.Config

	logger *slog.Logger
}

// New creates a new App with all services initialized from cfg.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, boards []*models.Board, opts ...Option) (*App, error) {
	ac := appConfig{
		logger:     slog.Default(),
		bufferSize: events.DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&ac)
	}

	if cfg == nil {
		cfg = config.Default()
	}

	latency, err := cfg.LatencyDuration()
	if err != nil {
		return nil, err
	}
	policy, err := board.ParseOrphanPolicy(cfg.OrphanPolicy)
	if err != nil {
		return nil, fmt.Errorf("failed to configure board store: %w", err)
	}

	bus := events.NewBus(ac.bufferSize)

	storeOpts := []board.Option{
		board.WithLatency(latency),
		board.WithOrphanPolicy(policy),
		board.WithPublisher(bus),
		board.WithLogger(ac.logger),
	}
	storeOpts = append(storeOpts, ac.storeOptions...)

	ac.logger.Info("app initialized",
		"boards", len(boards),
		"latency", latency,
		"orphan_policy", policy.String())

	return &App{
		Events: bus,
		Boards: board.NewBoardStore(boards, storeOpts...),
		Config: cfg,
		logger: ac.logger,
	}, nil
}

// LoadSeed returns the boards named by cfg.SeedFile, or the built-in seed
func LoadSeed(cfg *config.Config) ([]*models.Board, error) {
	if cfg == nil || cfg.SeedFile == "" {
		return seed.Default()
	}
	return seed.Load(cfg.SeedFile)
}

// Close performs cleanup of application resources.
// The event bus is closed, which ends every subscription.
func (a *App) Close() error {
	a.logger.Debug("app closing", "metrics", a.Events.Metrics().GetSnapshot())
	return a.Events.Close()
}
