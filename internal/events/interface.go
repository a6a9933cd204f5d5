package events

// Publisher is the write side of the event system. The board store depends on
// this interface only, so tests can pass nil or a recorder.
type Publisher interface {
	// Publish delivers the event to every current subscriber
	Publish(event Event) error
}

// Subscriber is the read side used by UI collaborators.
type Subscriber interface {
	// Subscribe returns a channel of events for boardID (0 = all boards) and a
	// function that cancels the subscription
	Subscribe(boardID int) (<-chan Event, func())
}

// Compile-time verification that *Bus implements both sides
var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)
