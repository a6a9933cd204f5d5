package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardCreated EventType = "board_created"
	EventBoardUpdated EventType = "board_updated"
	EventBoardDeleted EventType = "board_deleted"
	EventItemCreated  EventType = "item_created"
	EventItemUpdated  EventType = "item_updated"
	EventItemDeleted  EventType = "item_deleted"
)

// Event represents a store change notification
type Event struct {
	Type       EventType
	BoardID    int       // Owning board, 0 for an item that is not attached anywhere
	ItemID     int       // Set for item events only
	Timestamp  time.Time // When the event was published
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// IsItemEvent reports whether the event concerns an item rather than a board.
func (e Event) IsItemEvent() bool {
	switch e.Type {
	case EventItemCreated, EventItemUpdated, EventItemDeleted:
		return true
	}
	return false
}
