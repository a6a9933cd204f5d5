package state

import (
	"strings"
	"testing"
)

// TestAppendChar_MaxLength ensures buffer at 100 chars rejects more input.
func TestAppendChar_MaxLength(t *testing.T) {
	state := NewInputState()
	state.Buffer = strings.Repeat("a", 100)

	if state.AppendChar('x') {
		t.Error("AppendChar() at max length (100) returned true, want false")
	}
	if len(state.Buffer) != 100 {
		t.Errorf("Buffer length after append at max = %d, want 100", len(state.Buffer))
	}
}

// TestAppendChar_CountsRunes ensures the limit is measured in characters, not bytes.
func TestAppendChar_CountsRunes(t *testing.T) {
	state := NewInputState()
	state.Buffer = strings.Repeat("é", 99)

	if !state.AppendChar('ü') {
		t.Fatal("AppendChar() at 99 runes returned false, want true")
	}
	if state.AppendChar('x') {
		t.Error("AppendChar() at 100 runes returned true, want false")
	}
}

func TestAppendText_StopsWhenFull(t *testing.T) {
	state := NewInputState()
	state.Buffer = strings.Repeat("a", 98)

	if added := state.AppendText("xyz"); added != 2 {
		t.Errorf("AppendText() added %d runes, want 2", added)
	}
	if !strings.HasSuffix(state.Buffer, "xy") {
		t.Errorf("Buffer = %q, want suffix xy", state.Buffer)
	}
}

// TestBackspace_EmptyBuffer ensures backspace on empty string is safe.
func TestBackspace_EmptyBuffer(t *testing.T) {
	state := NewInputState()

	if state.Backspace() {
		t.Error("Backspace() on empty buffer returned true, want false")
	}
	if state.Buffer != "" {
		t.Errorf("Buffer after backspace on empty = %q, want empty", state.Buffer)
	}
}

// TestBackspace_MultiByte ensures a whole character is removed.
func TestBackspace_MultiByte(t *testing.T) {
	state := NewInputState()
	state.Buffer = "café"

	state.Backspace()
	if state.Buffer != "caf" {
		t.Errorf("Buffer after backspace = %q, want %q", state.Buffer, "caf")
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		buffer string
		want   bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" a ", false},
	}
	for _, tt := range tests {
		state := NewInputState()
		state.Buffer = tt.buffer
		if got := state.IsEmpty(); got != tt.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", tt.buffer, got, tt.want)
		}
	}
}

func TestStartAndHasInputChanges(t *testing.T) {
	state := NewInputState()
	state.Start("Rename item:", "Write docs")

	if state.Prompt != "Rename item:" || state.Buffer != "Write docs" {
		t.Fatalf("Start() left state %+v", state)
	}
	if state.HasInputChanges() {
		t.Error("HasInputChanges() right after Start = true, want false")
	}

	state.AppendText("  ")
	if state.HasInputChanges() {
		t.Error("HasInputChanges() with only trailing whitespace = true, want false")
	}

	state.AppendChar('!')
	if !state.HasInputChanges() {
		t.Error("HasInputChanges() after edit = false, want true")
	}

	state.Clear()
	if state.Buffer != "" || state.Prompt != "" || state.InitialBuffer != "" {
		t.Errorf("Clear() left state %+v", state)
	}
}
