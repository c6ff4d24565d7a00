package eventbus

import (
	"sync"
	"time"
)

// Collection identifies which data collection changed
type Collection string

const (
	CollectionProducts Collection = "products"
	CollectionOrders   Collection = "orders"
	CollectionFinance  Collection = "finance"
	CollectionCart     Collection = "cart"
)

// Event carries a change notification. It names the collection that
// changed, not what changed; subscribers re-read the data they care about.
type Event struct {
	Collection Collection
	At         time.Time
}

// Bus is an in-process publish/subscribe hub for change notifications
type Bus struct {
	mu   sync.RWMutex
	subs map[int]func(Event)
	next int
}

// New creates an empty bus
func New() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers fn for all future events and returns an
// unsubscribe function. fn is called synchronously on the publisher's
// goroutine, so it must not block.
func (b *Bus) Subscribe(fn func(Event)) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish notifies all subscribers that a collection changed
func (b *Bus) Publish(c Collection) {
	ev := Event{Collection: c, At: time.Now()}

	// Snapshot the subscriber list before invoking so a callback may
	// subscribe or cancel without deadlocking on the bus lock.
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
