package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// NotificationTTL is how long a toast stays on screen
const NotificationTTL = 3 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Boards board.Service
	Config *config.Config
	Keys   KeyMap

	AppState          *state.AppState
	UiState           *state.UIState
	InputState        *state.InputState
	NotificationState *state.NotificationState

	eventChan   <-chan events.Event
	unsubscribe func()
}

// InitialModel creates the TUI model. Boards load asynchronously from Init.
// When subscriber is non-nil the model listens for store events and reloads
// on every change.
func InitialModel(ctx context.Context, boards board.Service, subscriber events.Subscriber, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)
	initStyles()

	m := Model{
		Ctx:               ctx,
		Boards:            boards,
		Config:            cfg,
		Keys:              NewKeyMap(cfg.KeyMappings),
		AppState:          state.NewAppState(),
		UiState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		NotificationState: state.NewNotificationState(),
		unsubscribe:       func() {},
	}

	if subscriber != nil {
		m.eventChan, m.unsubscribe = subscriber.Subscribe(0)
	}
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoards(), m.waitForEvent())
}

// Close cancels the event subscription
func (m Model) Close() {
	m.unsubscribe()
}

// currentGroups returns the groups of the open board
func (m Model) currentGroups() []*models.Group {
	b := m.AppState.CurrentBoard()
	if b == nil {
		return nil
	}
	return b.Groups
}

// getCurrentGroup returns the selected group, or nil when the board has none
func (m Model) getCurrentGroup() *models.Group {
	groups := m.currentGroups()
	idx := m.UiState.SelectedGroup()
	if idx < 0 || idx >= len(groups) {
		return nil
	}
	return groups[idx]
}

// getCurrentItem returns the selected item, or nil when the group is empty
func (m Model) getCurrentItem() *models.Item {
	g := m.getCurrentGroup()
	if g == nil {
		return nil
	}
	idx := m.UiState.SelectedItem()
	if idx < 0 || idx >= len(g.Items) {
		return nil
	}
	return g.Items[idx]
}

// getSelectedBoard returns the highlighted board in the list view
func (m Model) getSelectedBoard() *models.Board {
	boards := m.AppState.Boards()
	idx := m.UiState.SelectedBoard()
	if idx < 0 || idx >= len(boards) {
		return nil
	}
	return boards[idx]
}

// clampSelection keeps every cursor inside the loaded data
func (m Model) clampSelection() {
	groups := m.currentGroups()
	m.UiState.Clamp(len(m.AppState.Boards()), len(groups), func(i int) int {
		return len(groups[i].Items)
	})
}

// notify raises a toast and schedules its removal
func (m Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.NotificationState.Add(level, message, NotificationTTL)
	return expireNotification(id, NotificationTTL)
}
