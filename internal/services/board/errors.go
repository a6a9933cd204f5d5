package board

import (
	"errors"
	"fmt"
)

// Domain errors for the board store
var (
	// ErrNotFound matches every lookup failure below via errors.Is
	ErrNotFound = errors.New("not found")

	ErrBoardNotFound = errors.New("board not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrGroupNotFound = errors.New("group not found")

	// ErrMissingGroupID is returned by CreateItem under OrphanReject when the
	// fields carry no usable groupId
	ErrMissingGroupID = errors.New("item requires a groupId")

	// ErrInvalidField is returned when a payload value cannot be stored as JSON
	ErrInvalidField = errors.New("invalid field")
)

// NotFoundError reports a missing entity together with the requested id.
type NotFoundError struct {
	Entity string // "board", "item" or "group"
	ID     int
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// Is matches ErrNotFound and the entity-specific sentinel.
func (e *NotFoundError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return true
	case ErrBoardNotFound:
		return e.Entity == "board"
	case ErrItemNotFound:
		return e.Entity == "item"
	case ErrGroupNotFound:
		return e.Entity == "group"
	}
	return false
}

func boardNotFound(id int) error {
	return &NotFoundError{Entity: "board", ID: id}
}

func itemNotFound(id int) error {
	return &NotFoundError{Entity: "item", ID: id}
}

func groupNotFound(id int) error {
	return &NotFoundError{Entity: "group", ID: id}
}
