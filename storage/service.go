package storage

import "context"

// mutate performs the read-modify-write cycle shared by the repositories:
// load the current value, apply fn, persist, and notify subscribers.
func mutate[T any](ctx context.Context, a *Accessor, broker *Broker, key string, def T, fn func(T) T) bool {
	next := fn(Get(ctx, a, key, def))
	if !Set(ctx, a, key, next, 0) {
		return false
	}
	broker.Publish(key)
	return true
}
