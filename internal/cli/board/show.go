package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <board-id>",
		Short: "Show a board with its groups and items",
		Args:  handler.ExactID("board"),
		RunE:  handler.Command(handler.HandlerFunc(runShow)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseID(args.Args[0], "board")
	if err != nil {
		return nil, err
	}
	return args.CLI.App.Boards.GetByID(ctx, id)
}
