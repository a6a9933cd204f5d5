package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board. The board id and timestamps are assigned by the store.

Groups can be supplied through --data as a "groups" list.

Examples:
  tablero board create --title="Roadmap"
  tablero board create --title="Roadmap" --set owner=ana --set priority=2
  tablero board create --data='{"title": "Sprint", "groups": [{"Id": 1, "title": "To Do"}]}'

  # Capture the new id
  BOARD_ID=$(tablero board create --title="Roadmap" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runCreate)),
	}

	handler.AddFieldFlags(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	fields, err := args.Parser().ParseFields()
	if err != nil {
		return nil, err
	}

	created, err := args.CLI.App.Boards.Create(ctx, fields)
	if err != nil {
		return nil, cli.DataError(err)
	}
	return cli.Outcome{Verb: "created", Data: created}, nil
}
