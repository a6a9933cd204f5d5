package board

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
)

// UpdateCmd returns the board update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <board-id>",
		Short: "Update board fields",
		Long: `Merge fields into a board. Fields not mentioned are kept; a JSON null
removes a field. The id and timestamps cannot be changed.

Examples:
  tablero board update 1 --title="Renamed"
  tablero board update 1 --set owner=null
`,
		Args: handler.ExactID("board"),
		RunE: handler.Command(handler.HandlerFunc(runUpdate)),
	}

	handler.AddFieldFlags(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseID(args.Args[0], "board")
	if err != nil {
		return nil, err
	}

	fields, err := args.Parser().ParseFields()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, cli.UsageError(errors.New("nothing to update: pass --title, --description, --set or --data"))
	}

	updated, err := args.CLI.App.Boards.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, boardservice.ErrNotFound) {
			return nil, err
		}
		return nil, cli.DataError(err)
	}
	return cli.Outcome{Verb: "updated", Data: updated}, nil
}
