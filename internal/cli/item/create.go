package item

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// CreateCmd returns the item create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an item in a group",
		Long: `Create an item and append it to the first group with the given id.

With orphan_policy "allow" (the default) an unknown group still yields an item,
but it is not stored on any board. With "reject" the command fails.

Examples:
  tablero item create --group=10 --title="Write release notes"
  ITEM_ID=$(tablero item create --group=10 --title="Triage" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runCreate)),
	}

	cmd.Flags().Int("group", 0, "Group ID (required)")
	handler.AddFieldFlags(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := args.Parser()

	groupID, err := parser.ParseInt("group")
	if err != nil {
		return nil, err
	}

	fields, err := parser.ParseFields()
	if err != nil {
		return nil, err
	}
	fields[models.KeyGroupID] = groupID

	created, err := args.CLI.App.Boards.CreateItem(ctx, fields)
	if err != nil {
		return nil, err
	}
	return cli.Outcome{Verb: "created", Data: created}, nil
}
