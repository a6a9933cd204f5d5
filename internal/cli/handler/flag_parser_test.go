package handler

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a cobra.Command with the field flags parsed from args
func createTestCommand(t *testing.T, args ...string) *FlagParser {
	t.Helper()
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	AddFieldFlags(cmd)
	cmd.Flags().Int("group", 0, "")
	require.NoError(t, cmd.ParseFlags(args))
	return NewFlagParser(cmd)
}

func exitCodeOf(err error) int {
	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

// ============================================================================
// ParseID Tests
// ============================================================================

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arg     string
		want    int
		wantErr bool
	}{
		{name: "valid id", arg: "42", want: 42},
		{name: "surrounding space", arg: " 7 ", want: 7},
		{name: "zero", arg: "0", wantErr: true},
		{name: "negative", arg: "-1", wantErr: true},
		{name: "not a number", arg: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseID(tt.arg, "board")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, cli.ExitUsage, exitCodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExactID(t *testing.T) {
	t.Parallel()

	validate := ExactID("item")
	assert.NoError(t, validate(nil, []string{"100"}))
	assert.Error(t, validate(nil, nil))
	assert.Error(t, validate(nil, []string{"1", "2"}))
	assert.Error(t, validate(nil, []string{"x"}))
}

// ============================================================================
// ParseFields Tests
// ============================================================================

func TestParseFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want models.Fields
	}{
		{
			name: "no flags",
			args: nil,
			want: models.Fields{},
		},
		{
			name: "title and description",
			args: []string{"--title", "Launch", "--description", "**soon**"},
			want: models.Fields{"title": "Launch", "description": "**soon**"},
		},
		{
			name: "empty title is kept",
			args: []string{"--title", ""},
			want: models.Fields{"title": ""},
		},
		{
			name: "set values decode as JSON",
			args: []string{"--set", "points=5", "--set", "done=true", "--set", "owner=ana", "--set", "tags=[\"a\"]"},
			want: models.Fields{
				"points": json.Number("5"),
				"done":   true,
				"owner":  "ana",
				"tags":   []any{"a"},
			},
		},
		{
			name: "set null removes",
			args: []string{"--set", "owner=null"},
			want: models.Fields{"owner": nil},
		},
		{
			name: "data then set then title",
			args: []string{"--data", `{"title": "from data", "points": 1}`, "--set", "points=2", "--title", "from flag"},
			want: models.Fields{"title": "from flag", "points": json.Number("2")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := createTestCommand(t, tt.args...).ParseFields()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFields_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"data not an object", []string{"--data", "[1,2]"}},
		{"data not JSON", []string{"--data", "{oops"}},
		{"set without equals", []string{"--set", "points"}},
		{"set without key", []string{"--set", "=5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := createTestCommand(t, tt.args...).ParseFields()
			require.Error(t, err)
			assert.Equal(t, cli.ExitDataErr, exitCodeOf(err))
		})
	}
}

func TestParseInt(t *testing.T) {
	t.Parallel()

	got, err := createTestCommand(t, "--group", "10").ParseInt("group")
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	_, err = createTestCommand(t).ParseInt("group")
	assert.Equal(t, cli.ExitUsage, exitCodeOf(err))
}
