package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// handleListKeys handles normal mode keys on the board list
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.Keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.ShowHelp):
		m.UiState.SetMode(state.HelpMode)

	case key.Matches(msg, k.PrevItem):
		if idx := m.UiState.SelectedBoard(); idx > 0 {
			m.UiState.SetSelectedBoard(idx - 1)
		}

	case key.Matches(msg, k.NextItem):
		if idx := m.UiState.SelectedBoard(); idx < len(m.AppState.Boards())-1 {
			m.UiState.SetSelectedBoard(idx + 1)
		}

	case key.Matches(msg, k.OpenBoard):
		if b := m.getSelectedBoard(); b != nil {
			m.AppState.SetCurrentBoardID(b.ID)
			m.UiState.SetView(state.BoardDetailView)
		}

	case key.Matches(msg, k.CreateBoard):
		m.InputState.Start("New board title:", "")
		m.UiState.SetMode(state.CreateBoardMode)

	case key.Matches(msg, k.DeleteBoard):
		if m.getSelectedBoard() != nil {
			m.UiState.SetMode(state.DeleteBoardConfirmMode)
		}

	case key.Matches(msg, k.Reload):
		return m, m.loadBoards()
	}

	return m, nil
}

// handleBoardKeys handles normal mode keys on an open board
func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.Keys
	groups := m.currentGroups()

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.ShowHelp):
		m.UiState.SetMode(state.HelpMode)

	case key.Matches(msg, k.Back):
		m.AppState.SetCurrentBoardID(0)
		m.UiState.SetView(state.BoardListView)

	case key.Matches(msg, k.Reload):
		return m, m.loadBoards()

	case key.Matches(msg, k.PrevGroup):
		if idx := m.UiState.SelectedGroup(); idx > 0 {
			m.UiState.SetSelectedGroup(idx - 1)
		}

	case key.Matches(msg, k.NextGroup):
		if idx := m.UiState.SelectedGroup(); idx < len(groups)-1 {
			m.UiState.SetSelectedGroup(idx + 1)
		}

	case key.Matches(msg, k.PrevItem):
		if idx := m.UiState.SelectedItem(); idx > 0 {
			m.UiState.SetSelectedItem(idx - 1)
		}

	case key.Matches(msg, k.NextItem):
		if g := m.getCurrentGroup(); g != nil && m.UiState.SelectedItem() < len(g.Items)-1 {
			m.UiState.SetSelectedItem(m.UiState.SelectedItem() + 1)
		}

	case key.Matches(msg, k.AddGroup):
		if m.AppState.CurrentBoard() != nil {
			m.InputState.Start("New group title:", "")
			m.UiState.SetMode(state.AddGroupMode)
		}

	case key.Matches(msg, k.AddItem):
		g := m.getCurrentGroup()
		if g == nil {
			return m, m.notify(state.LevelWarning, "Add a group before adding items")
		}
		m.InputState.Start("New item in "+titleOr(g.Title(), "group")+":", "")
		m.UiState.SetMode(state.AddItemMode)

	case key.Matches(msg, k.RenameItem):
		if it := m.getCurrentItem(); it != nil {
			m.InputState.Start("Rename item:", it.Title())
			m.UiState.SetMode(state.RenameItemMode)
		}

	case key.Matches(msg, k.DeleteItem):
		if m.getCurrentItem() != nil {
			m.UiState.SetMode(state.DeleteItemConfirmMode)
		}

	case key.Matches(msg, k.MoveItemLeft):
		return m, m.moveSelectedItem(-1)

	case key.Matches(msg, k.MoveItemRight):
		return m, m.moveSelectedItem(1)
	}

	return m, nil
}

// moveSelectedItem moves the selected item to the neighbouring group in
// direction (-1 left, +1 right). The selection follows the item.
func (m Model) moveSelectedItem(direction int) tea.Cmd {
	it := m.getCurrentItem()
	if it == nil {
		return nil
	}

	groups := m.currentGroups()
	target := m.UiState.SelectedGroup() + direction
	if target < 0 || target >= len(groups) {
		return nil
	}

	dest := groups[target]
	m.UiState.SetSelectedGroup(target)
	m.UiState.SetSelectedItem(len(dest.Items))
	return m.moveItem(it.ID, dest)
}
