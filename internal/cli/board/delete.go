package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board and everything in it",
		Args:  handler.ExactID("board"),
		RunE:  handler.Command(handler.HandlerFunc(runDelete)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseID(args.Args[0], "board")
	if err != nil {
		return nil, err
	}

	removed, err := args.CLI.App.Boards.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return cli.Outcome{Verb: "deleted", Data: removed}, nil
}
