package storage

import "sync"

// Broker is an in-process publish/subscribe channel keyed by storage key.
// It is how independent bindings and repositories observing the same key
// stay consistent within one session. Subscriptions have an explicit
// lifecycle: callers must invoke the returned unsubscribe function when
// they stop caring about a key.
type Broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func()
}

// NewBroker creates a new Broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[int]func())}
}

// Subscribe registers fn to run whenever key is published. The returned
// function removes the subscription; calling it more than once is safe.
func (b *Broker) Subscribe(key string, fn func()) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.subs[key] == nil {
		b.subs[key] = make(map[int]func())
	}
	b.subs[key][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[key], id)
	}
}

// Publish notifies every subscriber of key. Callbacks run synchronously on
// the publishing goroutine, outside the broker lock.
func (b *Broker) Publish(key string) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[key]))
	for _, fn := range b.subs[key] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
