// Package launcher wires the application together and runs the TUI.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/tui"
)

// SetupLogging routes slog to the log file at the configured level.
// A broken config falls back to info; the command that needs the config
// reports the error itself.
func SetupLogging() error {
	level := slog.LevelInfo
	if cfg, err := config.Load(); err == nil {
		level = cfg.SlogLevel()
	}
	if err := logging.Init(level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// Launch starts the TUI application. cmd supplies the global flags
// (--seed, --latency, --write). ctx should be cancelled on SIGINT/SIGTERM.
func Launch(ctx context.Context, cmd *cobra.Command) error {
	c, err := cli.NewCLI(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	model := tui.InitialModel(ctx, c.App.Boards, c.App.Events, c.App.Config)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if !errors.Is(err, tea.ErrProgramKilled) || ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
		slog.Info("shutdown signal received, cleaning up")
	}

	// Write back with a fresh context so a signal does not lose the edits
	return c.Persist(context.WithoutCancel(ctx))
}
