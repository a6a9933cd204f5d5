package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tablero/internal/config"
)

// SeedJSON is a two-board fixture: board 1 has groups 10 and 11 with item 1,
// board 2 has group 20 and no items
const SeedJSON = `[
  {
    "Id": 1,
    "title": "Launch",
    "description": "Ship it",
    "createdAt": "2024-01-15T09:00:00Z",
    "updatedAt": "2024-01-15T09:00:00Z",
    "groups": [
      {"Id": 10, "title": "To Do", "items": [
        {"Id": 1, "groupId": 10, "title": "Write notes", "createdAt": "2024-01-15T09:00:00Z", "updatedAt": "2024-01-15T09:00:00Z"}
      ]},
      {"Id": 11, "title": "Done", "items": []}
    ]
  },
  {
    "Id": 2,
    "title": "Ops",
    "groups": [{"Id": 20, "title": "Inbox"}]
  }
]`

// SetupEnv isolates config lookup in a temp dir with zero latency and
// returns the path of a seed file holding SeedJSON
func SetupEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(config.EnvThemeFile, "")

	configDir := filepath.Join(dir, "tablero")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("latency: 0s\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	seedPath := WriteSeed(t, SeedJSON, "boards.json")
	t.Setenv(config.EnvSeedFile, seedPath)
	return seedPath
}

// WriteSeed writes content to a file named name in a fresh temp dir
func WriteSeed(t *testing.T, content, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write seed: %v", err)
	}
	return path
}
