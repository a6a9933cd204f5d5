package state

// View identifies which screen is shown
type View int

const (
	BoardListView   View = iota // All boards
	BoardDetailView             // One board's groups and items
)

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode             Mode = iota // Default navigation mode
	CreateBoardMode                    // Typing a new board title
	DeleteBoardConfirmMode             // Confirming board deletion
	AddGroupMode                       // Typing a new group title
	AddItemMode                        // Typing a new item title
	RenameItemMode                     // Renaming the selected item
	DeleteItemConfirmMode              // Confirming item deletion
	HelpMode                           // Displaying help screen
)

// IsInput reports whether the mode reads text into the input buffer
func (m Mode) IsInput() bool {
	switch m {
	case CreateBoardMode, AddGroupMode, AddItemMode, RenameItemMode:
		return true
	}
	return false
}

// IsConfirm reports whether the mode waits for a yes/no answer
func (m Mode) IsConfirm() bool {
	return m == DeleteBoardConfirmMode || m == DeleteItemConfirmMode
}

// UIState manages the user interface state.
// This includes navigation (board, group and item selection),
// terminal dimensions, and the current interaction mode.
type UIState struct {
	view View
	mode Mode

	// selectedBoard is the index of the highlighted board in the list view
	selectedBoard int

	// selectedGroup is the index of the selected group in the detail view
	selectedGroup int

	// selectedItem is the index of the selected item within the selected group
	selectedItem int

	width  int
	height int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		view: BoardListView,
		mode: NormalMode,
	}
}

// View returns the screen being shown.
func (s *UIState) View() View {
	return s.view
}

// SetView switches screens and resets the detail selection.
func (s *UIState) SetView(view View) {
	s.view = view
	s.mode = NormalMode
	s.selectedGroup = 0
	s.selectedItem = 0
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// SelectedBoard returns the index of the highlighted board.
func (s *UIState) SelectedBoard() int {
	return s.selectedBoard
}

// SetSelectedBoard updates the highlighted board index.
func (s *UIState) SetSelectedBoard(index int) {
	s.selectedBoard = index
}

// SelectedGroup returns the index of the selected group.
func (s *UIState) SelectedGroup() int {
	return s.selectedGroup
}

// SetSelectedGroup updates the selected group and resets the item selection.
func (s *UIState) SetSelectedGroup(index int) {
	s.selectedGroup = index
	s.selectedItem = 0
}

// SelectedItem returns the index of the selected item.
func (s *UIState) SelectedItem() int {
	return s.selectedItem
}

// SetSelectedItem updates the selected item index.
func (s *UIState) SetSelectedItem(index int) {
	s.selectedItem = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Clamp keeps every selection inside the given bounds.
// boards is the number of boards, groups the number of groups on the open
// board and items the item count of the selected group.
func (s *UIState) Clamp(boards, groups int, items func(group int) int) {
	s.selectedBoard = clamp(s.selectedBoard, boards)
	s.selectedGroup = clamp(s.selectedGroup, groups)
	if groups == 0 {
		s.selectedItem = 0
		return
	}
	s.selectedItem = clamp(s.selectedItem, items(s.selectedGroup))
}

func clamp(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
