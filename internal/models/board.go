package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Board is the top-level container: an ordered set of groups plus payload.
// ID and the timestamps are owned by the store.
type Board struct {
	ID        int
	Groups    []*Group
	CreatedAt time.Time
	UpdatedAt time.Time
	Fields    Fields
}

// GetID returns the board ID. Used by the CLI quiet output mode.
func (b *Board) GetID() int {
	return b.ID
}

// Title returns the "title" payload field.
func (b *Board) Title() string {
	return b.Fields.String(KeyTitle)
}

// Description returns the "description" payload field.
func (b *Board) Description() string {
	return b.Fields.String(KeyDescription)
}

// Group returns the group with the given ID, or nil.
func (b *Board) Group(id int) *Group {
	for _, g := range b.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// ItemCount returns the number of items across all groups.
func (b *Board) ItemCount() int {
	n := 0
	for _, g := range b.Groups {
		n += len(g.Items)
	}
	return n
}

// Clone returns a deep copy of the board including groups and items.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	out := &Board{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Fields:    b.Fields.Clone(),
	}
	out.Groups = CloneGroups(b.Groups)
	return out
}

// CloneBoards deep-copies a board slice, preserving nil.
func CloneBoards(boards []*Board) []*Board {
	if boards == nil {
		return nil
	}
	out := make([]*Board, len(boards))
	for i, b := range boards {
		out[i] = b.Clone()
	}
	return out
}

// MarshalJSON flattens the payload next to the system fields.
func (b Board) MarshalJSON() ([]byte, error) {
	out := encodePayload(b.Fields, 4)
	out[KeyID] = b.ID
	if b.Groups != nil {
		out[KeyGroups] = b.Groups
	}
	if !b.CreatedAt.IsZero() {
		out[KeyCreatedAt] = b.CreatedAt
	}
	if !b.UpdatedAt.IsZero() {
		out[KeyUpdatedAt] = b.UpdatedAt
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits a wire object into system fields and payload.
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode board: %w", err)
	}

	var decoded Board
	var err error
	if decoded.ID, err = takeInt(raw, KeyID); err != nil {
		return err
	}
	if _, err := take(raw, KeyGroups, &decoded.Groups); err != nil {
		return err
	}
	if _, err := take(raw, KeyCreatedAt, &decoded.CreatedAt); err != nil {
		return err
	}
	if _, err := take(raw, KeyUpdatedAt, &decoded.UpdatedAt); err != nil {
		return err
	}
	if decoded.Fields, err = decodePayload(raw); err != nil {
		return err
	}

	*b = decoded
	return nil
}
