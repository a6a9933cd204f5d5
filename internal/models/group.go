package models

import (
	"encoding/json"
	"fmt"
)

// Group is a subdivision of a board (a status column) holding items.
// Group IDs are chosen by the caller and are unique within their board.
type Group struct {
	ID     int
	Items  []*Item
	Fields Fields
}

// Title returns the "title" payload field.
func (g *Group) Title() string {
	return g.Fields.String(KeyTitle)
}

// ItemIndex returns the position of the item with the given ID, or -1.
func (g *Group) ItemIndex(itemID int) int {
	for i, it := range g.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the group and its items.
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	out := &Group{
		ID:     g.ID,
		Fields: g.Fields.Clone(),
	}
	if g.Items != nil {
		out.Items = make([]*Item, len(g.Items))
		for i, it := range g.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}

// CloneGroups deep-copies a group slice, preserving nil.
func CloneGroups(groups []*Group) []*Group {
	if groups == nil {
		return nil
	}
	out := make([]*Group, len(groups))
	for i, g := range groups {
		out[i] = g.Clone()
	}
	return out
}

// GroupsFromValue converts a payload value into groups. It accepts group
// values directly or any JSON-shaped value (as decoded from JSON or YAML).
func GroupsFromValue(v any) ([]*Group, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []*Group:
		return CloneGroups(t), nil
	case []Group:
		out := make([]*Group, len(t))
		for i := range t {
			out[i] = t[i].Clone()
		}
		return out, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode groups: %w", err)
	}
	var groups []*Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("groups must be a list of group objects: %w", err)
	}
	return groups, nil
}

// MarshalJSON flattens the payload next to the system fields.
func (g Group) MarshalJSON() ([]byte, error) {
	out := encodePayload(g.Fields, 2)
	out[KeyID] = g.ID
	if g.Items != nil {
		out[KeyItems] = g.Items
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits a wire object into system fields and payload.
func (g *Group) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode group: %w", err)
	}

	var decoded Group
	var err error
	if decoded.ID, err = takeInt(raw, KeyID); err != nil {
		return err
	}
	if _, err := take(raw, KeyItems, &decoded.Items); err != nil {
		return err
	}
	if decoded.Fields, err = decodePayload(raw); err != nil {
		return err
	}

	*g = decoded
	return nil
}
