package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// testBoards returns two boards: "Launch" with groups 10 and 11, and "Ops"
// with no groups.
func testBoards() []*models.Board {
	return []*models.Board{
		{
			ID:     1,
			Fields: models.Fields{"title": "Launch", "description": "Ship **v1**"},
			Groups: []*models.Group{
				{ID: 10, Fields: models.Fields{"title": "To Do"}, Items: []*models.Item{
					{ID: 1, GroupID: 10, Fields: models.Fields{"title": "Write notes"}},
					{ID: 2, GroupID: 10, Fields: models.Fields{"title": "Review"}},
				}},
				{ID: 11, Fields: models.Fields{"title": "Done"}},
			},
		},
		{ID: 2, Fields: models.Fields{"title": "Ops"}},
	}
}

// setupTestModel builds a model over a zero-latency store, sized and loaded
func setupTestModel(t *testing.T, opts ...board.Option) (Model, *board.BoardStore) {
	t.Helper()

	opts = append([]board.Option{board.WithLatency(0), board.WithLogger(logging.Discard())}, opts...)
	store := board.NewBoardStore(testBoards(), opts...)
	m := InitialModel(context.Background(), store, nil, config.Default())

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, m.loadBoards()())
	require.Len(t, m.AppState.Boards(), 2)
	return m, store
}

// setupSubscribedModel is setupTestModel with the model listening on a bus
func setupSubscribedModel(t *testing.T) (Model, *board.BoardStore) {
	t.Helper()

	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(func() { _ = bus.Close() })

	store := board.NewBoardStore(testBoards(),
		board.WithLatency(0),
		board.WithLogger(logging.Discard()),
		board.WithPublisher(bus))
	m := InitialModel(context.Background(), store, bus, config.Default())
	t.Cleanup(m.Close)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, m.loadBoards()())
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return model
}

// press sends one key and returns the model and command
func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(k))
	return next.(Model), cmd
}

// typeText sends every rune of text as a key press
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = press(t, m, string(r))
	}
	return m
}

// run executes cmd and feeds the resulting message back into the model.
// It must only be given commands that return a single message.
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Msg) {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	msg := cmd()
	return update(t, m, msg), msg
}

// reload runs a board load the way the batch after a mutation would
func reload(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, m.loadBoards()())
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "backspace":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyBackspace})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case " ":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}
