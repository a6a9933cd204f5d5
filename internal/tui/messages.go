package tui

import (
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// BoardsLoadedMsg carries a fresh snapshot of every board
type BoardsLoadedMsg struct {
	Boards []*models.Board
	Err    error
}

// MutationMsg reports the result of a store write.
// Message is the toast shown on success.
type MutationMsg struct {
	Message string
	Err     error

	// OpenBoardID is set when the UI should open a board afterwards
	OpenBoardID int
}

// RefreshMsg is sent when the event bus reports a store change
type RefreshMsg struct {
	Event events.Event
}

// NotificationExpiredMsg removes a toast once its time is up
type NotificationExpiredMsg struct {
	ID int
}
