package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Board list
	OpenBoard   string `yaml:"open_board"`
	CreateBoard string `yaml:"create_board"`
	DeleteBoard string `yaml:"delete_board"`

	// Items
	AddItem       string `yaml:"add_item"`
	RenameItem    string `yaml:"rename_item"`
	DeleteItem    string `yaml:"delete_item"`
	MoveItemLeft  string `yaml:"move_item_left"`
	MoveItemRight string `yaml:"move_item_right"`

	// Groups
	AddGroup string `yaml:"add_group"`

	// Navigation
	PrevGroup string `yaml:"prev_group"`
	NextGroup string `yaml:"next_group"`
	PrevItem  string `yaml:"prev_item"`
	NextItem  string `yaml:"next_item"`
	Back      string `yaml:"back"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Board list
		OpenBoard:   "enter",
		CreateBoard: "n",
		DeleteBoard: "d",

		// Items
		AddItem:       "a",
		RenameItem:    "e",
		DeleteItem:    "d",
		MoveItemLeft:  "H",
		MoveItemRight: "L",

		// Groups
		AddGroup: "C",

		// Navigation
		PrevGroup: "h",
		NextGroup: "l",
		PrevItem:  "k",
		NextItem:  "j",
		Back:      "esc",

		// Other
		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.OpenBoard, defaults.OpenBoard)
	fill(&k.CreateBoard, defaults.CreateBoard)
	fill(&k.DeleteBoard, defaults.DeleteBoard)
	fill(&k.AddItem, defaults.AddItem)
	fill(&k.RenameItem, defaults.RenameItem)
	fill(&k.DeleteItem, defaults.DeleteItem)
	fill(&k.MoveItemLeft, defaults.MoveItemLeft)
	fill(&k.MoveItemRight, defaults.MoveItemRight)
	fill(&k.AddGroup, defaults.AddGroup)
	fill(&k.PrevGroup, defaults.PrevGroup)
	fill(&k.NextGroup, defaults.NextGroup)
	fill(&k.PrevItem, defaults.PrevItem)
	fill(&k.NextItem, defaults.NextItem)
	fill(&k.Back, defaults.Back)
	fill(&k.Reload, defaults.Reload)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
