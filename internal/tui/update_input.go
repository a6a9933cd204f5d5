package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// handleInputMode handles text entry for every prompt mode
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleInputConfirm()
	case "esc":
		m.cancelInput()
		return m, nil
	case "backspace", "ctrl+h":
		m.InputState.Backspace()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	default:
		if text := msg.Key().Text; text != "" {
			m.InputState.AppendText(text)
		}
		return m, nil
	}
}

// handleInputConfirm submits the prompt. Blank input closes it.
func (m Model) handleInputConfirm() (tea.Model, tea.Cmd) {
	if m.InputState.IsEmpty() {
		m.cancelInput()
		return m, nil
	}

	title := m.InputState.TrimmedBuffer()
	mode := m.UiState.Mode()
	m.cancelInput()

	switch mode {
	case state.CreateBoardMode:
		return m, m.createBoard(title)

	case state.AddGroupMode:
		if b := m.AppState.CurrentBoard(); b != nil {
			return m, m.addGroup(b.ID, m.AppState.NextGroupID(), title)
		}

	case state.AddItemMode:
		if g := m.getCurrentGroup(); g != nil {
			return m, m.createItem(g.ID, title)
		}

	case state.RenameItemMode:
		if it := m.getCurrentItem(); it != nil && it.Title() != title {
			return m, m.renameItem(it.ID, title)
		}
	}

	return m, nil
}

func (m Model) cancelInput() {
	m.InputState.Clear()
	m.UiState.SetMode(state.NormalMode)
}

// handleConfirmMode handles y/n answers for delete confirmations
func (m Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		mode := m.UiState.Mode()
		m.UiState.SetMode(state.NormalMode)

		switch mode {
		case state.DeleteBoardConfirmMode:
			if b := m.getSelectedBoard(); b != nil {
				return m, m.deleteBoard(b.ID)
			}
		case state.DeleteItemConfirmMode:
			if it := m.getCurrentItem(); it != nil {
				return m, m.deleteItem(it.ID)
			}
		}
		return m, nil

	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}
