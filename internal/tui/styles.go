package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// Style definitions for the board UI, rebuilt from the theme by initStyles
var (
	// TitleStyle defines the appearance of titles (board names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for counts, ids and hints
	SubtleStyle lipgloss.Style

	// BoardRowStyle and SelectedBoardRowStyle render rows of the board list
	BoardRowStyle         lipgloss.Style
	SelectedBoardRowStyle lipgloss.Style

	// GroupStyle defines a group column; SelectedGroupStyle the focused one
	GroupStyle         lipgloss.Style
	SelectedGroupStyle lipgloss.Style

	// ItemStyle defines an item card; SelectedItemStyle the focused one
	ItemStyle         lipgloss.Style
	SelectedItemStyle lipgloss.Style

	// Modal dialog base styles (width is set at render time)
	CreateInputBoxStyle   lipgloss.Style
	EditInputBoxStyle     lipgloss.Style
	DeleteConfirmBoxStyle lipgloss.Style
	HelpBoxStyle          lipgloss.Style

	// StatusBarStyle renders the footer line
	StatusBarStyle lipgloss.Style
)

const (
	groupWidth = 32
	itemWidth  = groupWidth - 4
	modalWidth = 50
)

func init() {
	initStyles()
}

func initStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	BoardRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		PaddingLeft(2)

	SelectedBoardRowStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Background(lipgloss.Color(theme.SelectedBg)).
		PaddingLeft(2)

	GroupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.GroupBorder)).
		Padding(0, 1).
		Width(groupWidth)

	SelectedGroupStyle = GroupStyle.
		BorderForeground(lipgloss.Color(theme.Highlight))

	ItemStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ItemBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1).
		Width(itemWidth)

	SelectedItemStyle = ItemStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Background(lipgloss.Color(theme.SelectedBg))

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	EditInputBoxStyle = CreateInputBoxStyle.
		BorderForeground(lipgloss.Color(theme.Edit))

	DeleteConfirmBoxStyle = CreateInputBoxStyle.
		BorderForeground(lipgloss.Color(theme.Delete))

	HelpBoxStyle = CreateInputBoxStyle.
		BorderForeground(lipgloss.Color(theme.Highlight))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))
}
