package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// receive waits briefly for the next event on ch
func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBus_PublishDeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	bus := NewBus(4)
	defer func() { _ = bus.Close() }()

	a, cancelA := bus.Subscribe(0)
	defer cancelA()
	b, cancelB := bus.Subscribe(0)
	defer cancelB()

	require.NoError(t, bus.Publish(Event{Type: EventBoardCreated, BoardID: 3}))

	ea := receive(t, a)
	eb := receive(t, b)
	assert.Equal(t, EventBoardCreated, ea.Type)
	assert.Equal(t, 3, eb.BoardID)
	assert.False(t, ea.Timestamp.IsZero())
}

func TestBus_SequenceIDsIncrease(t *testing.T) {
	t.Parallel()

	bus := NewBus(8)
	ch, cancel := bus.Subscribe(0)
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, bus.Publish(Event{Type: EventItemUpdated, BoardID: 1, ItemID: 100}))
	}

	var last int64
	for i := 0; i < 3; i++ {
		e := receive(t, ch)
		assert.Greater(t, e.SequenceID, last)
		last = e.SequenceID
	}
}

func TestBus_BoardFilter(t *testing.T) {
	t.Parallel()

	bus := NewBus(4)
	board1, cancel1 := bus.Subscribe(1)
	defer cancel1()

	require.NoError(t, bus.Publish(Event{Type: EventBoardUpdated, BoardID: 2}))
	require.NoError(t, bus.Publish(Event{Type: EventBoardUpdated, BoardID: 1}))
	// Events with no board reach every subscriber
	require.NoError(t, bus.Publish(Event{Type: EventItemCreated, BoardID: 0, ItemID: 100}))

	first := receive(t, board1)
	second := receive(t, board1)
	assert.Equal(t, 1, first.BoardID)
	assert.Equal(t, 0, second.BoardID)
	assert.True(t, second.IsItemEvent())

	select {
	case e := <-board1:
		t.Fatalf("unexpected extra event %+v", e)
	default:
	}
}

func TestBus_FullQueueDropsWithoutBlocking(t *testing.T) {
	t.Parallel()

	bus := NewBus(1)
	_, cancel := bus.Subscribe(0)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			_ = bus.Publish(Event{Type: EventBoardUpdated, BoardID: 1})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber queue")
	}

	snap := bus.Metrics().GetSnapshot()
	assert.Equal(t, int64(5), snap.EventsPublished)
	assert.Equal(t, int64(1), snap.EventsDelivered)
	assert.Equal(t, int64(4), snap.EventsDropped)
}

func TestBus_UnsubscribeClosesChannel(t *testing.T) {
	t.Parallel()

	bus := NewBus(2)
	ch, cancel := bus.Subscribe(0)
	assert.Equal(t, int32(1), bus.Metrics().GetSnapshot().Subscribers)

	cancel()
	cancel() // idempotent

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, int32(0), bus.Metrics().GetSnapshot().Subscribers)
}

func TestBus_Close(t *testing.T) {
	t.Parallel()

	bus := NewBus(2)
	ch, cancel := bus.Subscribe(0)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	_, ok := <-ch
	assert.False(t, ok)
	cancel()

	assert.ErrorIs(t, bus.Publish(Event{Type: EventBoardDeleted}), ErrBusClosed)

	late, _ := bus.Subscribe(0)
	_, ok = <-late
	assert.False(t, ok, "subscribing to a closed bus yields a closed channel")
}

func TestBus_ConcurrentPublishAndSubscribe(t *testing.T) {
	t.Parallel()

	bus := NewBus(64)
	defer func() { _ = bus.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, cancel := bus.Subscribe(0)
			cancel()
		}()
		go func(id int) {
			defer wg.Done()
			_ = bus.Publish(Event{Type: EventBoardUpdated, BoardID: id})
		}(i + 1)
	}
	wg.Wait()

	assert.Equal(t, int64(8), bus.Metrics().GetSnapshot().EventsPublished)
}

func TestEvent_IsItemEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		eventType EventType
		want      bool
	}{
		{EventBoardCreated, false},
		{EventBoardUpdated, false},
		{EventBoardDeleted, false},
		{EventItemCreated, true},
		{EventItemUpdated, true},
		{EventItemDeleted, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Event{Type: tt.eventType}.IsItemEvent(), string(tt.eventType))
	}
}
