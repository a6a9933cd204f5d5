// Package seed loads the boards a store starts with.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/thenoetrevino/tablero/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed boards.json
var defaultBoards []byte

// Format names a seed encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for seed files with an unsupported extension
var ErrUnknownFormat = errors.New("unknown seed format")

// Default returns the built-in boards
func Default() ([]*models.Board, error) {
	return Parse(defaultBoards, FormatJSON)
}

// Load reads a seed file. The format is taken from the extension:
// .json, .yaml or .yml.
func Load(path string) ([]*models.Board, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	boards, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return boards, nil
}

// FormatFromPath maps a file extension to a Format
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Parse decodes boards from data. The document is either a list of boards or
// an object with a "boards" list. YAML documents are converted to JSON first
// so both formats share one decoder.
func Parse(data []byte, format Format) ([]*models.Board, error) {
	switch format {
	case FormatJSON:
	case FormatYAML:
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []*models.Board{}, nil
	}

	if data[0] == '{' {
		var doc struct {
			Boards []*models.Board `json:"boards"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode boards: %w", err)
		}
		return nonNil(doc.Boards), nil
	}

	var boards []*models.Board
	if err := json.Unmarshal(data, &boards); err != nil {
		return nil, fmt.Errorf("failed to decode boards: %w", err)
	}
	return nonNil(boards), nil
}

// Save writes boards to path in the format given by its extension.
// Writers take an exclusive lock on path+".lock" and replace the file
// through a temp file, so readers never see a partial document.
func Save(path string, boards []*models.Board) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(boards, format)
	if err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock seed file %s: %w", path, err)
	}
	defer func() { _ = lock.Unlock() }()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write seed file %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace seed file %s: %w", path, err)
	}
	return nil
}

// Encode renders boards as an indented JSON list or a YAML list
func Encode(boards []*models.Board, format Format) ([]byte, error) {
	if boards == nil {
		boards = []*models.Board{}
	}

	data, err := json.MarshalIndent(boards, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode boards: %w", err)
	}

	switch format {
	case FormatJSON:
		return append(data, '\n'), nil
	case FormatYAML:
		return jsonToYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func jsonToYAML(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode boards: %w", err)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return out, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert yaml to json: %w", err)
	}
	return out, nil
}

func nonNil(boards []*models.Board) []*models.Board {
	if boards == nil {
		return []*models.Board{}
	}
	return boards
}
