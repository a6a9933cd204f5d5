package item

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the item delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item",
		Args:  handler.ExactID("item"),
		RunE:  handler.Command(handler.HandlerFunc(runDelete)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseID(args.Args[0], "item")
	if err != nil {
		return nil, err
	}

	removed, err := args.CLI.App.Boards.DeleteItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return cli.Outcome{Verb: "deleted", Data: removed}, nil
}
