package events

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ErrBusClosed is returned when publishing to a closed bus
var ErrBusClosed = errors.New("event bus is closed")

// DefaultBufferSize is the per-subscriber queue length used when none is given
const DefaultBufferSize = 16

// subscriber is one registered listener on the bus
type subscriber struct {
	id        string
	boardID   int // 0 = all boards
	send      chan Event
	closeOnce sync.Once
}

func (s *subscriber) close() {
	s.closeOnce.Do(func() { close(s.send) })
}

// Bus is an in-process fan-out of store change events.
// Publishing never blocks: a subscriber whose queue is full misses the event.
type Bus struct {
	subscribers     map[string]*subscriber
	mu              sync.RWMutex
	bufferSize      int
	closed          bool
	sequenceCounter atomic.Int64
	metrics         *Metrics
	now             func() time.Time
}

// NewBus creates a bus whose subscribers each get a queue of bufferSize events.
// A non-positive size falls back to DefaultBufferSize.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Bus{
		subscribers: make(map[string]*subscriber),
		bufferSize:  bufferSize,
		metrics:     NewMetrics(),
		now:         time.Now,
	}
}

// Subscribe registers a listener for boardID (0 = all boards).
// The returned function unsubscribes and closes the channel; calling it more
// than once is safe.
func (b *Bus) Subscribe(boardID int) (<-chan Event, func()) {
	sub := &subscriber{
		id:      uuid.NewString(),
		boardID: boardID,
		send:    make(chan Event, b.bufferSize),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.close()
		return sub.send, func() {}
	}
	b.subscribers[sub.id] = sub
	b.metrics.SetSubscribers(int32(len(b.subscribers)))
	b.mu.Unlock()

	slog.Debug("event subscriber added", "subscriber_id", sub.id, "board_id", boardID)

	return sub.send, func() { b.unsubscribe(sub.id) }
}

func (b *Bus) unsubscribe(id string) {
	b.mu.Lock()
	sub, ok := b.subscribers[id]
	if ok {
		delete(b.subscribers, id)
		b.metrics.SetSubscribers(int32(len(b.subscribers)))
	}
	b.mu.Unlock()

	if ok {
		sub.close()
		slog.Debug("event subscriber removed", "subscriber_id", id)
	}
}

// Publish stamps the event with a timestamp and sequence number and delivers it
// to every interested subscriber.
func (b *Bus) Publish(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	event.SequenceID = b.sequenceCounter.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	b.metrics.IncEventsPublished()

	for _, sub := range b.subscribers {
		// Send if the event is not board-specific, the subscriber wants all boards, or they match
		if event.BoardID != 0 && sub.boardID != 0 && sub.boardID != event.BoardID {
			continue
		}

		select {
		case sub.send <- event:
			b.metrics.IncEventsDelivered()
		default:
			b.metrics.IncEventsDropped()
			slog.Warn("subscriber queue full, event dropped",
				"subscriber_id", sub.id,
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}

	return nil
}

// Close removes all subscribers and closes their channels. Later publishes
// return ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for id, sub := range b.subscribers {
		sub.close()
		delete(b.subscribers, id)
	}
	b.metrics.SetSubscribers(0)

	return nil
}

// Metrics returns the live metrics of the bus
func (b *Bus) Metrics() *Metrics {
	return b.metrics
}
