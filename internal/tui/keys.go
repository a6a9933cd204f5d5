package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/config"
)

// KeyMap holds the bindings built from the configured key mappings
type KeyMap struct {
	OpenBoard   key.Binding
	CreateBoard key.Binding
	DeleteBoard key.Binding

	AddItem       key.Binding
	RenameItem    key.Binding
	DeleteItem    key.Binding
	MoveItemLeft  key.Binding
	MoveItemRight key.Binding

	AddGroup key.Binding

	PrevGroup key.Binding
	NextGroup key.Binding
	PrevItem  key.Binding
	NextItem  key.Binding
	Back      key.Binding

	Reload   key.Binding
	ShowHelp key.Binding
	Quit     key.Binding
}

// NewKeyMap creates bindings from km. Arrow keys always work for navigation
// and ctrl+c always quits.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		OpenBoard:   binding("open board", km.OpenBoard),
		CreateBoard: binding("new board", km.CreateBoard),
		DeleteBoard: binding("delete board", km.DeleteBoard),

		AddItem:       binding("add item", km.AddItem),
		RenameItem:    binding("rename item", km.RenameItem),
		DeleteItem:    binding("delete item", km.DeleteItem),
		MoveItemLeft:  binding("move item left", km.MoveItemLeft),
		MoveItemRight: binding("move item right", km.MoveItemRight),

		AddGroup: binding("add group", km.AddGroup),

		PrevGroup: binding("previous group", km.PrevGroup, "left"),
		NextGroup: binding("next group", km.NextGroup, "right"),
		PrevItem:  binding("previous", km.PrevItem, "up"),
		NextItem:  binding("next", km.NextItem, "down"),
		Back:      binding("back", km.Back),

		Reload:   binding("reload", km.Reload),
		ShowHelp: binding("help", km.ShowHelp),
		Quit:     binding("quit", km.Quit, "ctrl+c"),
	}
}

func binding(desc, primary string, extra ...string) key.Binding {
	keys := append([]string{primary}, extra...)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(primary, desc),
	)
}

// ListHelp returns the bindings shown on the board list
func (k KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.PrevItem, k.NextItem, k.OpenBoard, k.CreateBoard, k.DeleteBoard, k.Reload, k.ShowHelp, k.Quit}
}

// BoardHelp returns the bindings shown on an open board
func (k KeyMap) BoardHelp() []key.Binding {
	return []key.Binding{
		k.PrevGroup, k.NextGroup, k.PrevItem, k.NextItem,
		k.AddItem, k.RenameItem, k.DeleteItem, k.MoveItemLeft, k.MoveItemRight,
		k.AddGroup, k.Reload, k.Back, k.ShowHelp, k.Quit,
	}
}
