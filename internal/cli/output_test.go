package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

func sampleBoard() *models.Board {
	return &models.Board{
		ID:     4,
		Fields: models.Fields{"title": "Roadmap"},
		Groups: []*models.Group{
			{ID: 10, Fields: models.Fields{"title": "Later"}, Items: []*models.Item{
				{ID: 100, GroupID: 10, Fields: models.Fields{"title": "Think"}},
			}},
		},
	}
}

// ============================================================================
// Success Method Tests - JSON Mode
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		validate func(t *testing.T, result map[string]interface{})
	}{
		{
			name: "map data",
			data: map[string]interface{}{"test": "value", "number": float64(42)},
			validate: func(t *testing.T, result map[string]interface{}) {
				dataMap := result["data"].(map[string]interface{})
				if dataMap["test"] != "value" {
					t.Errorf("Expected data.test to be 'value', got %v", dataMap["test"])
				}
			},
		},
		{
			name: "board keeps wire keys",
			data: sampleBoard(),
			validate: func(t *testing.T, result map[string]interface{}) {
				dataMap := result["data"].(map[string]interface{})
				if dataMap["Id"] != float64(4) {
					t.Errorf("Expected data.Id to be 4, got %v", dataMap["Id"])
				}
				if dataMap["title"] != "Roadmap" {
					t.Errorf("Expected data.title to be Roadmap, got %v", dataMap["title"])
				}
			},
		},
		{
			name: "outcome encodes the record only",
			data: Outcome{Verb: "created", Data: sampleBoard()},
			validate: func(t *testing.T, result map[string]interface{}) {
				dataMap := result["data"].(map[string]interface{})
				if _, ok := dataMap["Verb"]; ok {
					t.Error("Expected Outcome wrapper fields to be hidden")
				}
				if dataMap["Id"] != float64(4) {
					t.Errorf("Expected data.Id to be 4, got %v", dataMap["Id"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(true, false)
			if err := formatter.Success(tt.data); err != nil {
				t.Fatalf("Success() returned error: %v", err)
			}

			var result map[string]interface{}
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, out.String())
			}
			if result["success"] != true {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result)
		})
	}
}

// ============================================================================
// Success Method Tests - Quiet Mode
// ============================================================================

func TestOutputFormatter_Success_Quiet_WithID(t *testing.T) {
	tests := []struct {
		name string
		data interface{}
		want string
	}{
		{"value with GetID", mockDataWithID{ID: 42, Name: "x"}, "42\n"},
		{"board", sampleBoard(), "4\n"},
		{"outcome", Outcome{Verb: "deleted", Data: &models.Item{ID: 100}}, "100\n"},
		{"board list", []*models.Board{{ID: 3}, {ID: 1}}, "3\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(false, true)
			if err := formatter.Success(tt.data); err != nil {
				t.Fatalf("Success() returned error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Quiet output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestOutputFormatter_Success_Quiet_WithoutID(t *testing.T) {
	formatter, out, _ := newTestFormatter(false, true)
	if err := formatter.Success(mockDataWithoutID{Name: "test", Value: 7}); err != nil {
		t.Fatalf("Success() returned error: %v", err)
	}

	// Falls through to human-readable output
	if !strings.Contains(out.String(), "test") {
		t.Errorf("Expected fallback output to contain data, got %q", out.String())
	}
}

// ============================================================================
// Success Method Tests - Human Readable
// ============================================================================

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		contains []string
	}{
		{"board list", []*models.Board{sampleBoard()}, []string{"Found 1 boards", "[4]", "Roadmap", "1 groups, 1 items"}},
		{"empty list", []*models.Board{}, []string{"No boards found"}},
		{"board", sampleBoard(), []string{"Roadmap", "Later", "[100] Think"}},
		{"item", &models.Item{ID: 100, GroupID: 10, Fields: models.Fields{"title": "Think"}}, []string{"[100]", "Think", "group 10"}},
		{"outcome", Outcome{Verb: "updated", Data: sampleBoard()}, []string{"Board updated 4", "Roadmap"}},
		{"untitled", &models.Board{ID: 9}, []string{"(untitled)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(false, false)
			if err := formatter.Success(tt.data); err != nil {
				t.Fatalf("Success() returned error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("Output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter, out, _ := newTestFormatter(true, false)
	if err := formatter.ErrorWithSuggestion("NOT_FOUND", "board with id 9 not found", "list boards"); err != nil {
		t.Fatalf("ErrorWithSuggestion() returned error: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]interface{})
	if errData["code"] != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "list boards" {
		t.Errorf("Expected suggestion, got %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	formatter, out, errOut := newTestFormatter(false, false)
	if err := formatter.Error("ERROR", "boom"); err != nil {
		t.Fatalf("Error() returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: boom") {
		t.Errorf("Expected error on stderr, got %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "Suggestion") {
		t.Error("Expected no suggestion line")
	}
}

func TestOutputFormatter_Error_HumanStyled(t *testing.T) {
	formatter, _, errOut := newTestFormatter(false, false)
	if err := formatter.ErrorWithSuggestion("NOT_FOUND", "board with id 9 not found", "list boards"); err != nil {
		t.Fatalf("ErrorWithSuggestion() returned error: %v", err)
	}

	want := styles.ErrorStyle.Render("❌ Error: board with id 9 not found") + "\n" +
		styles.WarningStyle.Render("💡 Suggestion: list boards") + "\n"
	if errOut.String() != want {
		t.Errorf("Expected styled error and suggestion lines\ngot:  %q\nwant: %q", errOut.String(), want)
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	formatter, _, errOut := newTestFormatter(false, false)

	notFound := &board.NotFoundError{Entity: "board", ID: 9}
	err := formatter.Fail(notFound)

	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected ExitCodeError, got %T", err)
	}
	if exitErr.Code != ExitNotFound || !exitErr.Reported {
		t.Errorf("Unexpected exit error %+v", exitErr)
	}
	if !errors.Is(err, board.ErrBoardNotFound) {
		t.Error("Expected the cause to stay matchable")
	}

	// Already reported errors are not printed twice
	before := errOut.Len()
	_ = formatter.Fail(err)
	if errOut.Len() != before {
		t.Error("Expected reported error to be silent")
	}
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitError},
		{"board not found", &board.NotFoundError{Entity: "board", ID: 1}, ExitNotFound},
		{"item not found wrapped", fmt.Errorf("ctx: %w", &board.NotFoundError{Entity: "item", ID: 1}), ExitNotFound},
		{"group not found", &board.NotFoundError{Entity: "group", ID: 1}, ExitValidation},
		{"missing group id", board.ErrMissingGroupID, ExitValidation},
		{"invalid config", fmt.Errorf("%w: latency", config.ErrInvalidConfig), ExitValidation},
		{"invalid field", fmt.Errorf("%w \"meta\"", board.ErrInvalidField), ExitDataErr},
		{"usage", UsageError(errors.New("bad")), ExitUsage},
		{"data", DataError(errors.New("bad")), ExitDataErr},
		{"explicit wins", WithExitCode(ExitError, &board.NotFoundError{Entity: "board", ID: 1}), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWithExitCode_Nil(t *testing.T) {
	if WithExitCode(ExitUsage, nil) != nil {
		t.Error("Expected nil error to stay nil")
	}
}
