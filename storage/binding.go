package storage

import (
	"context"
	"sync"
)

// Binding keeps an in-memory value mirrored to a storage key. The value is
// initialized from storage on creation, written back on every update, and
// re-read whenever another binding or repository publishes a change to the
// same key, so two bindings on one key never visibly diverge.
type Binding[T any] struct {
	accessor    *Accessor
	broker      *Broker
	key         string
	unsubscribe func()

	mu    sync.Mutex
	value T
}

// NewBinding creates a binding for key, seeded from storage or, if the key
// is absent, from initial. Callers must Close the binding when done.
func NewBinding[T any](ctx context.Context, a *Accessor, broker *Broker, key string, initial T) *Binding[T] {
	b := &Binding[T]{
		accessor: a,
		broker:   broker,
		key:      key,
		value:    Get(ctx, a, key, initial),
	}
	b.unsubscribe = broker.Subscribe(key, b.reload)
	return b
}

// Get returns the current value.
func (b *Binding[T]) Get() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Set replaces the value, persists it, and notifies other bindings on the
// same key.
func (b *Binding[T]) Set(ctx context.Context, value T) {
	b.mu.Lock()
	b.value = value
	b.mu.Unlock()

	Set(ctx, b.accessor, b.key, value, 0)
	b.broker.Publish(b.key)
}

// Update applies a functional update to the previous value. This is the
// read-modify-write form needed for list mutation.
func (b *Binding[T]) Update(ctx context.Context, fn func(T) T) {
	b.mu.Lock()
	next := fn(b.value)
	b.value = next
	b.mu.Unlock()

	Set(ctx, b.accessor, b.key, next, 0)
	b.broker.Publish(b.key)
}

// Close removes the binding's subscription.
func (b *Binding[T]) Close() {
	b.unsubscribe()
}

// reload re-reads the persisted value after another writer publishes the
// key. The current value stands in as the default so a failed read keeps
// the binding unchanged.
func (b *Binding[T]) reload() {
	b.mu.Lock()
	current := b.value
	b.mu.Unlock()

	fresh := Get(context.Background(), b.accessor, b.key, current)

	b.mu.Lock()
	b.value = fresh
	b.mu.Unlock()
}
