package state

import "github.com/thenoetrevino/tablero/internal/models"

// AppState holds the board snapshot the UI renders.
// Boards are copies returned by the store; editing them never touches the store.
type AppState struct {
	boards         []*models.Board
	currentBoardID int
	focusBoardID   int
	loaded         bool
}

// NewAppState creates an AppState with no boards.
func NewAppState() *AppState {
	return &AppState{boards: []*models.Board{}}
}

// Boards returns the loaded boards in store order.
func (s *AppState) Boards() []*models.Board {
	return s.boards
}

// SetBoards replaces the snapshot.
func (s *AppState) SetBoards(boards []*models.Board) {
	if boards == nil {
		boards = []*models.Board{}
	}
	s.boards = boards
	s.loaded = true
}

// Loaded reports whether a snapshot has arrived yet.
func (s *AppState) Loaded() bool {
	return s.loaded
}

// CurrentBoardID returns the id of the open board, 0 when none is open.
func (s *AppState) CurrentBoardID() int {
	return s.currentBoardID
}

// SetCurrentBoardID opens the board with the given id.
func (s *AppState) SetCurrentBoardID(id int) {
	s.currentBoardID = id
}

// CurrentBoard returns the open board, or nil when it is gone.
func (s *AppState) CurrentBoard() *models.Board {
	return s.Board(s.currentBoardID)
}

// Board returns the loaded board with the given id, or nil.
func (s *AppState) Board(id int) *models.Board {
	for _, b := range s.boards {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// FocusBoard asks for the board with id to be highlighted once it is loaded.
func (s *AppState) FocusBoard(id int) {
	s.focusBoardID = id
}

// TakeFocus returns the index of the board waiting for focus and clears the
// request. ok is false when no request is pending or the board is not loaded yet.
func (s *AppState) TakeFocus() (index int, ok bool) {
	if s.focusBoardID == 0 {
		return 0, false
	}
	for i, b := range s.boards {
		if b.ID == s.focusBoardID {
			s.focusBoardID = 0
			return i, true
		}
	}
	return 0, false
}

// NextGroupID returns an id no loaded group uses.
func (s *AppState) NextGroupID() int {
	next := 1
	for _, b := range s.boards {
		for _, g := range b.Groups {
			if g.ID >= next {
				next = g.ID + 1
			}
		}
	}
	return next
}
