package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Item is a leaf task. GroupID is a foreign key to the owning group; the store
// keeps the item inside that group's Items slice.
type Item struct {
	ID        int
	GroupID   int
	CreatedAt time.Time
	UpdatedAt time.Time
	Fields    Fields
}

// GetID returns the item ID. Used by the CLI quiet output mode.
func (it *Item) GetID() int {
	return it.ID
}

// Title returns the "title" payload field.
func (it *Item) Title() string {
	return it.Fields.String(KeyTitle)
}

// Clone returns a deep copy of the item.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	return &Item{
		ID:        it.ID,
		GroupID:   it.GroupID,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
		Fields:    it.Fields.Clone(),
	}
}

// MarshalJSON flattens the payload next to the system fields.
func (it Item) MarshalJSON() ([]byte, error) {
	out := encodePayload(it.Fields, 4)
	out[KeyID] = it.ID
	out[KeyGroupID] = it.GroupID
	if !it.CreatedAt.IsZero() {
		out[KeyCreatedAt] = it.CreatedAt
	}
	if !it.UpdatedAt.IsZero() {
		out[KeyUpdatedAt] = it.UpdatedAt
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits a wire object into system fields and payload.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode item: %w", err)
	}

	var decoded Item
	var err error
	if decoded.ID, err = takeInt(raw, KeyID); err != nil {
		return err
	}
	if decoded.GroupID, err = takeInt(raw, KeyGroupID); err != nil {
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

	*it = decoded
	return nil
}
