package tui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Every store call runs inside a command so the simulated latency never
// blocks the update loop.

func (m Model) loadBoards() tea.Cmd {
	ctx, boards := m.Ctx, m.Boards
	return func() tea.Msg {
		all, err := boards.GetAll(ctx)
		return BoardsLoadedMsg{Boards: all, Err: err}
	}
}

func (m Model) createBoard(title string) tea.Cmd {
	ctx, boards := m.Ctx, m.Boards
	return func() tea.Msg {
		b, err := boards.Create(ctx, models.Fields{"title": title})
		if err != nil {
			return MutationMsg{Err: fmt.Errorf("failed to create board: %w", err)}
		}
		return MutationMsg{Message: fmt.Sprintf("Created board %q", title), OpenBoardID: b.ID}
	}
}

func (m Model) deleteBoard(id int) tea.Cmd {
	ctx, boards := m.Ctx, m.Boards
	return func() tea.Msg {
		b, err := boards.Delete(ctx, id)
		if err != nil {
			return MutationMsg{Err: err}
		}
		return MutationMsg{Message: fmt.Sprintf("Deleted board %q", b.Title())}
	}
}

// addGroup appends a group by replacing the board's group list. The board is
// read again first so items written since the last load are kept.
func (m Model) addGroup(boardID, groupID int, title string) tea.Cmd {
	ctx, boards := m.Ctx, m.Boards
	return func() tea.Msg {
		b, err := boards.GetByID(ctx, boardID)
		if err != nil {
			return MutationMsg{Err: fmt.Errorf("failed to add group: %w", err)}
		}

		groups := append(b.Groups, &models.Group{
			ID:     groupID,
			Fields: models.Fields{"title": title},
			Items:  []*models.Item{},
		})
		if _, err := boards.Update(ctx, boardID, models.Fields{"groups": groups}); err != nil {
			return MutationMsg{Err: fmt.Errorf("failed to add group: %w", err)}
		}
		return MutationMsg{Message: fmt.Sprintf("Added group %q", title)}
	}
}

func (m Model) createItem(groupID int, title string) tea.Cmd {
	ctx, boards := m.Ctx, m.Boards
	return func() tea.Msg {
		if _, err := boards.CreateItem(ctx, models.Fields{"groupId": groupID, "title": title}); err != nil {
			return MutationMsg{Err: fmt.Errorf("failed to create item: %w", err)}
		}
		return MutationMsg{Message: fmt.Sprintf("Added item %q", title)}
	}
}

func (m Model) renameItem(itemID int, title string) tea.Cmd {
	ctx, boards := m.Ctx, m.Boards
	return func() tea.Msg {
		if _, err := boards.UpdateItem(ctx, itemID, models.Fields{"title": title}); err != nil {
			return MutationMsg{Err: err}
		}
		return MutationMsg{Message: fmt.Sprintf("Renamed item to %q", title)}
	}
}

func (m Model) moveItem(itemID int, group *models.Group) tea.Cmd {
	ctx, boards := m.Ctx, m.Boards
	groupID, groupTitle := group.ID, group.Title()
	return func() tea.Msg {
		if _, err := boards.UpdateItem(ctx, itemID, models.Fields{"groupId": groupID}); err != nil {
			return MutationMsg{Err: err}
		}
		return MutationMsg{Message: fmt.Sprintf("Moved item to %q", groupTitle)}
	}
}

func (m Model) deleteItem(itemID int) tea.Cmd {
	ctx, boards := m.Ctx, m.Boards
	return func() tea.Msg {
		it, err := boards.DeleteItem(ctx, itemID)
		if err != nil {
			return MutationMsg{Err: err}
		}
		return MutationMsg{Message: fmt.Sprintf("Deleted item %q", it.Title())}
	}
}

// waitForEvent returns a command that listens for store events and sends
// RefreshMsg when data changes. Returns nil without a subscription.
func (m Model) waitForEvent() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}

	ctx, ch := m.Ctx, m.eventChan
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				// Bus closed
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

func expireNotification(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return NotificationExpiredMsg{ID: id}
	})
}
