package tui

import (
	"context"
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Context cancelled, initiate graceful shutdown
	if m.Ctx.Err() != nil {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case BoardsLoadedMsg:
		return m.handleBoardsLoaded(msg)

	case MutationMsg:
		return m.handleMutation(msg)

	case RefreshMsg:
		slog.Debug("store changed, reloading", "type", msg.Event.Type, "board_id", msg.Event.BoardID)
		// Continue listening for more events
		return m, tea.Batch(m.loadBoards(), m.waitForEvent())

	case NotificationExpiredMsg:
		m.NotificationState.Expire(msg.ID)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleBoardsLoaded(msg BoardsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			return m, nil
		}
		slog.Error("failed to load boards", "error", msg.Err)
		return m, m.notify(state.LevelError, "Failed to load boards: "+msg.Err.Error())
	}

	m.AppState.SetBoards(msg.Boards)
	if idx, ok := m.AppState.TakeFocus(); ok {
		m.UiState.SetSelectedBoard(idx)
	}

	var cmd tea.Cmd
	if m.UiState.View() == state.BoardDetailView && m.AppState.CurrentBoard() == nil {
		// The open board was deleted elsewhere
		m.UiState.SetView(state.BoardListView)
		m.AppState.SetCurrentBoardID(0)
		cmd = m.notify(state.LevelWarning, "The open board no longer exists")
	}

	m.clampSelection()
	return m, cmd
}

func (m Model) handleMutation(msg MutationMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		slog.Error("store operation failed", "error", msg.Err)
		return m, m.notify(state.LevelError, msg.Err.Error())
	}

	if msg.OpenBoardID != 0 {
		m.AppState.FocusBoard(msg.OpenBoardID)
	}
	return m, tea.Batch(m.loadBoards(), m.notify(state.LevelInfo, msg.Message))
}

// handleKeyMsg dispatches key messages to the appropriate mode handler.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.UiState.Mode()
	switch {
	case mode.IsInput():
		return m.handleInputMode(msg)
	case mode.IsConfirm():
		return m.handleConfirmMode(msg)
	case mode == state.HelpMode:
		return m.handleHelpMode(msg)
	}

	if m.UiState.View() == state.BoardDetailView {
		return m.handleBoardKeys(msg)
	}
	return m.handleListKeys(msg)
}

func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if key.Matches(msg, m.Keys.Back, m.Keys.ShowHelp, m.Keys.Quit) {
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
