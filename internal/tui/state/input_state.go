package state

import "strings"

// maxInputLength bounds the text prompt buffer
const maxInputLength = 100

// InputState manages simple text input state for dialogs.
// It backs board creation, group creation, and item create/rename prompts.
type InputState struct {
	// Buffer contains the text currently being typed
	Buffer string

	// Prompt is the text displayed to the user (e.g., "New board title:")
	Prompt string

	// InitialBuffer stores the original buffer value for change detection (RenameItemMode)
	InitialBuffer string
}

// NewInputState creates a new InputState with empty values.
func NewInputState() *InputState {
	return &InputState{}
}

// Start opens a prompt with the given initial text
func (s *InputState) Start(prompt, initial string) {
	s.Prompt = prompt
	s.Buffer = initial
	s.InitialBuffer = initial
}

// Clear resets the buffer and prompt to empty strings.
func (s *InputState) Clear() {
	s.Buffer = ""
	s.Prompt = ""
	s.InitialBuffer = ""
}

// AppendChar appends a character to the input buffer if within max length.
// Returns true if the character was added, false if buffer is at max length.
func (s *InputState) AppendChar(c rune) bool {
	if len([]rune(s.Buffer)) >= maxInputLength {
		return false
	}

	s.Buffer += string(c)
	return true
}

// AppendText appends each rune of text until the buffer is full.
// Returns the number of runes added.
func (s *InputState) AppendText(text string) int {
	added := 0
	for _, c := range text {
		if !s.AppendChar(c) {
			break
		}
		added++
	}
	return added
}

// Backspace removes the last character from the input buffer.
// Returns true if a character was removed, false if buffer was already empty.
func (s *InputState) Backspace() bool {
	if len(s.Buffer) == 0 {
		return false
	}

	runes := []rune(s.Buffer)
	s.Buffer = string(runes[:len(runes)-1])
	return true
}

// IsEmpty returns true if the input buffer is empty or contains only whitespace.
func (s *InputState) IsEmpty() bool {
	return strings.TrimSpace(s.Buffer) == ""
}

// TrimmedBuffer returns the input buffer with leading and trailing whitespace removed.
func (s *InputState) TrimmedBuffer() string {
	return strings.TrimSpace(s.Buffer)
}

// HasInputChanges returns true if the buffer differs from initial value.
func (s *InputState) HasInputChanges() bool {
	return strings.TrimSpace(s.Buffer) != strings.TrimSpace(s.InitialBuffer)
}
