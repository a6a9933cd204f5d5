package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print a workflow guide for the board and item commands",
		Long: `Print a short markdown guide to tablero's data model and commands.

Useful as context for scripts and agents that drive tablero from the shell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), tutorialContent)
			return err
		},
	}
	return cmd
}
