package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/seed"
)

// Global flag names shared by the root command and every subcommand
const (
	FlagSeed    = "seed"
	FlagLatency = "latency"
	FlagWrite   = "write"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	seedFile  string
	writeBack bool
}

// AddGlobalFlags registers the persistent flags read by NewCLI
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagSeed, "", "Seed file to load boards from (.json, .yaml, .yml)")
	cmd.PersistentFlags().Duration(FlagLatency, 0, "Simulated store latency (overrides config)")
	cmd.PersistentFlags().Bool(FlagWrite, false, "Write the resulting boards back to the seed file")
}

// ApplyFlags copies global flag overrides from cmd into cfg
func ApplyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if f := cmd.Flag(FlagSeed); f != nil && f.Changed {
		cfg.SeedFile = f.Value.String()
	}

	if f := cmd.Flag(FlagLatency); f != nil && f.Changed {
		d, err := time.ParseDuration(f.Value.String())
		if err != nil {
			return UsageError(fmt.Errorf("invalid --latency: %w", err))
		}
		if d < 0 {
			return UsageError(errors.New("--latency must not be negative"))
		}
		cfg.Latency = d.String()
	}
	return nil
}

// NewCLI loads config, applies the global flags of cmd, loads the seed and
// builds the application
func NewCLI(cmd *cobra.Command) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := ApplyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	writeBack := false
	if f := cmd.Flag(FlagWrite); f != nil {
		writeBack = f.Value.String() == "true"
	}
	if writeBack && cfg.SeedFile == "" {
		return nil, UsageError(errors.New("--write needs a seed file (--seed or seed_file in config)"))
	}

	styles.Init(cfg.ColorScheme)

	boards, err := app.LoadSeed(cfg)
	if err != nil {
		return nil, DataError(err)
	}

	application, err := app.New(cfg, boards, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:       application,
		seedFile:  cfg.SeedFile,
		writeBack: writeBack,
	}, nil
}

// Persist writes every board back to the seed file when --write was given
func (c *CLI) Persist(ctx context.Context) error {
	if !c.writeBack {
		return nil
	}

	boards, err := c.App.Boards.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read boards: %w", err)
	}
	if err := seed.Save(c.seedFile, boards); err != nil {
		return err
	}

	slog.Debug("boards written to seed file", "path", c.seedFile, "boards", len(boards))
	return nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
