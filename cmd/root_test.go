package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"board", "item", "tutorial"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}

	for _, flag := range []string{cli.FlagSeed, cli.FlagLatency, cli.FlagWrite} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing global flag %q", flag)
	}
	assert.True(t, root.SilenceErrors)
	assert.True(t, root.SilenceUsage)
}

func TestRoot_RunsBoardCommandAndLogsToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	home := t.TempDir()
	t.Setenv("HOME", home)
	testutil.SetupEnv(t)

	out, _, err := testutil.ExecuteCommand(t, NewRootCmd(), "board", "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)

	_, err = os.Stat(filepath.Join(home, ".tablero", "logs", "tablero.log"))
	assert.NoError(t, err, "log file is created")
}

func TestRoot_ExitCodes(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("HOME", t.TempDir())
	testutil.SetupEnv(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"board not found", []string{"board", "show", "9999"}, cli.ExitNotFound},
		{"item to unknown group", []string{"item", "update", "1", "--group", "404"}, cli.ExitValidation},
		{"bad id", []string{"board", "show", "abc"}, cli.ExitUsage},
		{"bad data", []string{"board", "create", "--data", "[1]"}, cli.ExitDataErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := testutil.ExecuteCommand(t, NewRootCmd(), tt.args...)
			assert.Equal(t, tt.want, cli.ExitCode(err))
		})
	}
}
