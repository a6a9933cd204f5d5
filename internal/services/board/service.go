// Package board holds the in-memory board store: boards, their groups and the
// items inside those groups, served with a simulated network latency.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Service defines all board and item operations. Every call waits for the
// simulated latency, so callers must treat each one as blocking.
type Service interface {
	// Read operations
	GetAll(ctx context.Context) ([]*models.Board, error)
	GetByID(ctx context.Context, id int) (*models.Board, error)

	// Board write operations
	Create(ctx context.Context, fields models.Fields) (*models.Board, error)
	Update(ctx context.Context, id int, fields models.Fields) (*models.Board, error)
	Delete(ctx context.Context, id int) (*models.Board, error)

	// Item write operations
	CreateItem(ctx context.Context, fields models.Fields) (*models.Item, error)
	UpdateItem(ctx context.Context, itemID int, fields models.Fields) (*models.Item, error)
	DeleteItem(ctx context.Context, itemID int) (*models.Item, error)
}

// BoardStore is the authoritative in-memory collection of boards.
// Everything it returns is a detached copy.
type BoardStore struct {
	mu         sync.RWMutex
	boards     []*models.Board // most recently created first
	nextID     int
	nextItemID int

	latency      time.Duration
	orphanPolicy OrphanPolicy
	publisher    events.Publisher
	logger       *slog.Logger
	now          func() time.Time
}

// Compile-time verification that *BoardStore implements Service
var _ Service = (*BoardStore)(nil)

// NewBoardStore creates a store seeded with a copy of seed. The next board id
// is one more than the largest seed id (1 for an empty seed). Item ids start at
// the configured start, or past the largest item id already in the seed.
func NewBoardStore(seed []*models.Board, opts ...Option) *BoardStore {
	cfg := defaultStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &BoardStore{
		boards:       slices.DeleteFunc(models.CloneBoards(seed), func(b *models.Board) bool { return b == nil }),
		nextID:       1,
		nextItemID:   cfg.itemIDStart,
		latency:      cfg.latency,
		orphanPolicy: cfg.orphanPolicy,
		publisher:    cfg.publisher,
		logger:       cfg.logger,
		now:          cfg.clock,
	}
	if s.boards == nil {
		s.boards = []*models.Board{}
	}

	for _, b := range s.boards {
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
	}
	for _, b := range s.boards {
		for _, g := range b.Groups {
			if g == nil {
				continue
			}
			for _, it := range g.Items {
				if it != nil && it.ID >= s.nextItemID {
					s.nextItemID = it.ID + 1
				}
			}
		}
	}
	taken := make(map[int]bool)
	for _, b := range s.boards {
		b.Groups = s.adoptGroups(b.Groups, time.Time{}, taken)
		for _, g := range b.Groups {
			for _, it := range g.Items {
				taken[it.ID] = true
			}
		}
	}

	s.logger.Debug("board store initialized",
		"boards", len(s.boards),
		"next_board_id", s.nextID,
		"next_item_id", s.nextItemID,
		"latency", s.latency)

	return s
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

// GetAll returns copies of all boards in store order
func (s *BoardStore) GetAll(ctx context.Context) ([]*models.Board, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneBoards(s.boards), nil
}

// GetByID returns a copy of the board with the given id
func (s *BoardStore) GetByID(ctx context.Context, id int) (*models.Board, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, boardNotFound(id)
	}
	return s.boards[idx].Clone(), nil
}

// ============================================================================
// BOARD WRITE OPERATIONS
// ============================================================================

// Create allocates the next board id, stamps both timestamps and puts the new
// board first in store order
func (s *BoardStore) Create(ctx context.Context, fields models.Fields) (*models.Board, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	created, err := s.create(fields)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("board created", "board_id", created.ID)
	s.publish(events.EventBoardCreated, created.ID, 0)
	return created, nil
}

func (s *BoardStore) create(fields models.Fields) (*models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, err := mergeBoard(&models.Board{ID: s.nextID, CreatedAt: now}, fields, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	s.nextID++
	b.Groups = s.adoptGroups(b.Groups, now, s.itemIDs(b.ID))

	s.boards = slices.Insert(s.boards, 0, b)
	return b.Clone(), nil
}

// Update merges fields over the board and refreshes updatedAt. Identity and
// timestamps in fields are ignored; a "groups" value replaces the groups.
func (s *BoardStore) Update(ctx context.Context, id int, fields models.Fields) (*models.Board, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	updated, err := s.update(id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("board updated", "board_id", id, "fields", len(fields))
	s.publish(events.EventBoardUpdated, id, 0)
	return updated, nil
}

func (s *BoardStore) update(id int, fields models.Fields) (*models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, boardNotFound(id)
	}

	now := s.now()
	merged, err := mergeBoard(s.boards[idx], fields, now)
	if err != nil {
		return nil, fmt.Errorf("failed to update board %d: %w", id, err)
	}
	if fields.Has(models.KeyGroups) {
		merged.Groups = s.adoptGroups(merged.Groups, now, s.itemIDs(id))
	}

	s.boards[idx] = merged
	return merged.Clone(), nil
}

// Delete removes the board and returns it
func (s *BoardStore) Delete(ctx context.Context, id int) (*models.Board, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	removed, err := s.remove(id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("board deleted", "board_id", id)
	s.publish(events.EventBoardDeleted, id, 0)
	return removed, nil
}

func (s *BoardStore) remove(id int) (*models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, boardNotFound(id)
	}

	removed := s.boards[idx]
	s.boards = slices.Delete(s.boards, idx, idx+1)
	return removed, nil
}

// ============================================================================
// ITEM WRITE OPERATIONS
// ============================================================================

// CreateItem issues the next item id and appends the item to the first group
// matching fields["groupId"], refreshing that board's updatedAt. When no group
// matches, the orphan policy decides between returning the unattached item and
// failing.
func (s *BoardStore) CreateItem(ctx context.Context, fields models.Fields) (*models.Item, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	item, boardID, err := s.createItem(fields)
	if err != nil {
		return nil, err
	}

	if boardID == 0 {
		s.logger.Warn("item created without a matching group", "item_id", item.ID, "group_id", item.GroupID)
	} else {
		s.logger.Debug("item created", "item_id", item.ID, "group_id", item.GroupID, "board_id", boardID)
	}
	s.publish(events.EventItemCreated, boardID, item.ID)
	return item, nil
}

func (s *BoardStore) createItem(fields models.Fields) (*models.Item, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groupID, hasGroup := fields.Int(models.KeyGroupID)

	var owner *models.Board
	var group *models.Group
	if hasGroup {
		owner, group = s.findGroup(groupID)
	}

	if group == nil && s.orphanPolicy == OrphanReject {
		if !hasGroup {
			return nil, 0, ErrMissingGroupID
		}
		return nil, 0, groupNotFound(groupID)
	}

	payload, err := mergeFields(nil, fields, itemReservedKeys)
	if err != nil {
		return nil, 0, err
	}

	now := s.now()
	item := &models.Item{
		ID:        s.nextItemID,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
		Fields:    payload,
	}
	s.nextItemID++

	if group == nil {
		// Not stored anywhere, so the caller may keep this one
		return item, 0, nil
	}

	group.Items = append(group.Items, item)
	owner.UpdatedAt = now
	return item.Clone(), owner.ID, nil
}

// UpdateItem merges fields over the first item with a matching id (board,
// group, item order) and refreshes the item's and its board's updatedAt.
// A different groupId moves the item to the end of that group.
func (s *BoardStore) UpdateItem(ctx context.Context, itemID int, fields models.Fields) (*models.Item, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	item, boardIDs, err := s.updateItem(itemID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("item updated", "item_id", itemID, "group_id", item.GroupID, "boards", boardIDs)
	for _, boardID := range boardIDs {
		s.publish(events.EventItemUpdated, boardID, itemID)
	}
	return item, nil
}

func (s *BoardStore) updateItem(itemID int, fields models.Fields) (*models.Item, []int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, group, idx := s.findItem(itemID)
	if owner == nil {
		return nil, nil, itemNotFound(itemID)
	}

	now := s.now()
	merged, err := mergeItem(group.Items[idx], fields, now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update item %d: %w", itemID, err)
	}

	if raw, ok := fields[models.KeyGroupID]; ok {
		targetID, valid := fields.Int(models.KeyGroupID)
		if !valid {
			return nil, nil, fmt.Errorf("invalid groupId %v: %w", raw, ErrGroupNotFound)
		}
		if targetID != group.ID {
			targetBoard, targetGroup := s.findGroup(targetID)
			if targetGroup == nil {
				return nil, nil, groupNotFound(targetID)
			}

			group.Items = slices.Delete(group.Items, idx, idx+1)
			merged.GroupID = targetID
			targetGroup.Items = append(targetGroup.Items, merged)

			owner.UpdatedAt = now
			targetBoard.UpdatedAt = now
			if targetBoard.ID != owner.ID {
				return merged.Clone(), []int{owner.ID, targetBoard.ID}, nil
			}
			return merged.Clone(), []int{owner.ID}, nil
		}
	}

	group.Items[idx] = merged
	owner.UpdatedAt = now
	return merged.Clone(), []int{owner.ID}, nil
}

// DeleteItem removes the first item with a matching id and refreshes its
// board's updatedAt
func (s *BoardStore) DeleteItem(ctx context.Context, itemID int) (*models.Item, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	removed, boardID, err := s.removeItem(itemID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("item deleted", "item_id", itemID, "board_id", boardID)
	s.publish(events.EventItemDeleted, boardID, itemID)
	return removed, nil
}

func (s *BoardStore) removeItem(itemID int) (*models.Item, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, group, idx := s.findItem(itemID)
	if owner == nil {
		return nil, 0, itemNotFound(itemID)
	}

	removed := group.Items[idx]
	group.Items = slices.Delete(group.Items, idx, idx+1)
	owner.UpdatedAt = s.now()
	return removed, owner.ID, nil
}

// ============================================================================
// HELPERS
// ============================================================================

// delay waits out the simulated latency. A cancelled context ends the wait
// early and the operation is abandoned before touching any state.
func (s *BoardStore) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// indexOf returns the position of the board with the given id, or -1.
// Caller must hold the lock.
func (s *BoardStore) indexOf(id int) int {
	return slices.IndexFunc(s.boards, func(b *models.Board) bool { return b.ID == id })
}

// findGroup returns the first board holding a group with groupID.
// Caller must hold the lock.
func (s *BoardStore) findGroup(groupID int) (*models.Board, *models.Group) {
	for _, b := range s.boards {
		if g := b.Group(groupID); g != nil {
			return b, g
		}
	}
	return nil, nil
}

// findItem scans boards, then groups, then items for itemID.
// Caller must hold the lock.
func (s *BoardStore) findItem(itemID int) (*models.Board, *models.Group, int) {
	for _, b := range s.boards {
		for _, g := range b.Groups {
			if idx := g.ItemIndex(itemID); idx != -1 {
				return b, g, idx
			}
		}
	}
	return nil, nil, -1
}

// adoptGroups prepares groups entering the store. Nil entries are dropped,
// every item is pointed at its group and the item counter moves past every id
// seen. Items without an id, or whose id is in taken or repeats inside groups,
// get a fresh one. When now is set, missing timestamps are stamped too.
// Caller must hold the lock (or own s exclusively).
func (s *BoardStore) adoptGroups(groups []*models.Group, now time.Time, taken map[int]bool) []*models.Group {
	groups = slices.DeleteFunc(groups, func(g *models.Group) bool { return g == nil })

	for _, g := range groups {
		g.Items = slices.DeleteFunc(g.Items, func(it *models.Item) bool { return it == nil })
		for _, it := range g.Items {
			it.GroupID = g.ID
			if it.ID >= s.nextItemID {
				s.nextItemID = it.ID + 1
			}
		}
	}

	seen := make(map[int]bool)
	for _, g := range groups {
		for _, it := range g.Items {
			if it.ID <= 0 || taken[it.ID] || seen[it.ID] {
				if it.ID > 0 {
					s.logger.Debug("item id already in use, reassigning", "item_id", it.ID, "new_id", s.nextItemID)
				}
				it.ID = s.nextItemID
				s.nextItemID++
			}
			seen[it.ID] = true

			if now.IsZero() {
				continue
			}
			if it.CreatedAt.IsZero() {
				it.CreatedAt = now
			}
			if it.UpdatedAt.IsZero() {
				it.UpdatedAt = now
			}
		}
	}

	return groups
}

// itemIDs collects the ids of every stored item outside the board skip
func (s *BoardStore) itemIDs(skip int) map[int]bool {
	ids := make(map[int]bool)
	for _, b := range s.boards {
		if b.ID == skip {
			continue
		}
		for _, g := range b.Groups {
			for _, it := range g.Items {
				ids[it.ID] = true
			}
		}
	}
	return ids
}

// publish sends a change event after the lock is released
func (s *BoardStore) publish(eventType events.EventType, boardID, itemID int) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(events.Event{
		Type:    eventType,
		BoardID: boardID,
		ItemID:  itemID,
	}); err != nil {
		s.logger.Warn("failed to publish event",
			"event_type", eventType,
			"board_id", boardID,
			"item_id", itemID,
			"error", err)
	}
}
