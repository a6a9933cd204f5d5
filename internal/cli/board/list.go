package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards, most recently created first.

Examples:
  # Human-readable output
  tablero board list

  # JSON output for agents
  tablero board list --json

  # Quiet mode for bash capture
  BOARD_IDS=$(tablero board list --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	return args.CLI.App.Boards.GetAll(ctx)
}
