package seed

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	boards, err := Default()
	require.NoError(t, err)
	require.Len(t, boards, 1)

	b := boards[0]
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, "Product Launch", b.Title())
	require.Len(t, b.Groups, 3)

	titles := make([]string, 0, len(b.Groups))
	ids := make([]int, 0, len(b.Groups))
	for _, g := range b.Groups {
		titles = append(titles, g.Title())
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"To Do", "In Progress", "Done"}, titles)
	assert.Equal(t, []int{10, 11, 12}, ids)

	for _, g := range b.Groups {
		for _, it := range g.Items {
			assert.Equal(t, g.ID, it.GroupID)
			assert.Less(t, it.ID, 100)
		}
	}
}

func TestDefault_ReturnsFreshBoards(t *testing.T) {
	t.Parallel()

	first, err := Default()
	require.NoError(t, err)
	first[0].Fields["title"] = "changed"

	second, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "Product Launch", second[0].Title())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      string
		format    Format
		wantIDs   []int
		wantError bool
	}{
		{
			name:    "json list",
			data:    `[{"Id": 3, "title": "a"}, {"Id": 7}]`,
			format:  FormatJSON,
			wantIDs: []int{3, 7},
		},
		{
			name:    "json object",
			data:    `{"boards": [{"Id": 2}]}`,
			format:  FormatJSON,
			wantIDs: []int{2},
		},
		{
			name:    "empty document",
			data:    "  ",
			format:  FormatJSON,
			wantIDs: []int{},
		},
		{
			name: "yaml list",
			data: `
- Id: 4
  title: Roadmap
  groups:
    - Id: 40
      title: Later
      items:
        - Id: 400
          groupId: 40
          title: Think
`,
			format:  FormatYAML,
			wantIDs: []int{4},
		},
		{
			name: "yaml object",
			data: `
boards:
  - Id: 9
`,
			format:  FormatYAML,
			wantIDs: []int{9},
		},
		{
			name:      "non-integer id",
			data:      `[{"Id": "abc"}]`,
			format:    FormatJSON,
			wantError: true,
		},
		{
			name:      "broken yaml",
			data:      "- Id: [",
			format:    FormatYAML,
			wantError: true,
		},
		{
			name:      "unknown format",
			data:      "[]",
			format:    Format("toml"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			boards, err := Parse([]byte(tt.data), tt.format)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			ids := make([]int, 0, len(boards))
			for _, b := range boards {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestParse_YAMLKeepsNestedRecords(t *testing.T) {
	t.Parallel()

	data := `
- Id: 4
  title: Roadmap
  createdAt: 2024-01-15T09:00:00Z
  groups:
    - Id: 40
      title: Later
      items:
        - Id: 400
          groupId: 40
          title: Think
          estimate: 3
`
	boards, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)
	require.Len(t, boards, 1)

	b := boards[0]
	assert.False(t, b.CreatedAt.IsZero())
	require.NotNil(t, b.Group(40))
	require.Len(t, b.Group(40).Items, 1)

	it := b.Group(40).Items[0]
	assert.Equal(t, 400, it.ID)
	assert.Equal(t, "Think", it.Title())
	n, ok := it.Fields.Int("estimate")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "boards.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"Id": 5}]`), 0o644))

	yamlPath := filepath.Join(dir, "boards.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- Id: 6\n"), 0o644))

	boards, err := Load(jsonPath)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, 5, boards[0].ID)

	boards, err = Load(yamlPath)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, 6, boards[0].ID)

	_, err = Load(filepath.Join(dir, "boards.txt"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	boards, err := Default()
	require.NoError(t, err)
	boards[0].Fields["big"] = json.Number("9007199254740993")

	for _, name := range []string{"out.json", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, boards))

			loaded, err := Load(path)
			require.NoError(t, err)
			require.Len(t, loaded, 1)

			got := loaded[0]
			assert.Equal(t, boards[0].ID, got.ID)
			assert.Equal(t, boards[0].Title(), got.Title())
			assert.True(t, boards[0].CreatedAt.Equal(got.CreatedAt))
			assert.Equal(t, boards[0].ItemCount(), got.ItemCount())
			assert.Equal(t, json.Number("9007199254740993"), got.Fields["big"])
		})
	}
}

func TestSave_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Save(filepath.Join(t.TempDir(), "boards.csv"), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSave_ReleasesLock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "boards.json")
	require.NoError(t, Save(path, nil))
	require.NoError(t, Save(path, nil))

	_, err := os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)

	boards, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, boards)
}
