package item

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// UpdateCmd returns the item update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Update item fields or move it to another group",
		Long: `Merge fields into an item. Passing --group moves the item to the end of
that group, which may be on another board.

Examples:
  tablero item update 100 --title="Write better notes"
  tablero item update 100 --group=12
`,
		Args: handler.ExactID("item"),
		RunE: handler.Command(handler.HandlerFunc(runUpdate)),
	}

	cmd.Flags().Int("group", 0, "Move the item to this group")
	handler.AddFieldFlags(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseID(args.Args[0], "item")
	if err != nil {
		return nil, err
	}

	parser := args.Parser()
	fields, err := parser.ParseFields()
	if err != nil {
		return nil, err
	}

	if args.Has("group") {
		groupID, err := parser.ParseInt("group")
		if err != nil {
			return nil, err
		}
		fields[models.KeyGroupID] = groupID
	}

	if len(fields) == 0 {
		return nil, cli.UsageError(errors.New("nothing to update: pass --group, --title, --description, --set or --data"))
	}

	updated, err := args.CLI.App.Boards.UpdateItem(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return cli.Outcome{Verb: "updated", Data: updated}, nil
}
