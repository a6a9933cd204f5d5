package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/item"
	"github.com/thenoetrevino/tablero/internal/cli/tutorial"
	"github.com/thenoetrevino/tablero/internal/launcher"
)

// NewRootCmd builds the tablero command tree. Running it without a
// subcommand opens the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - boards, groups and items in your terminal",
		Long: `Tablero keeps boards of grouped items in an in-memory store with simulated latency.

Run without a subcommand to open the interactive board view, or use the
board and item commands for scripting. Boards are loaded from the seed file
on every run; pass --write to save changes back to it.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := launcher.SetupLogging(); err != nil {
				// Logs stay on stderr
				slog.Warn("logging setup failed", "error", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cmd)
		},
	}

	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the root command under a context that is cancelled on
// SIGINT or SIGTERM
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return NewRootCmd().ExecuteContext(ctx)
}
