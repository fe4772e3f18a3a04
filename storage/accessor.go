// Package storage implements the persisted-state subsystem: a versioned,
// expiring envelope over a raw key-value store, a publish/subscribe channel
// keyed by storage key, reactive bindings, and the domain repositories built
// on top of them.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/fixitquick/fixitquick"
)

// Version is the current storage schema version, stamped into every
// envelope at write time.
const Version = 1

// Item is the envelope persisted for every stored value.
type Item[T any] struct {
	Value T `json:"value"`

	// Expiry is an absolute unix-millisecond timestamp, or nil for no
	// expiration.
	Expiry *int64 `json:"expiry"`

	Version int `json:"version"`
}

// Accessor provides typed get/set/remove over the raw key-value store.
// Every method is total: failures degrade to a default value or a false
// return and are observable only through the logger.
type Accessor struct {
	kv     fixitquick.KV
	logger *slog.Logger

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// NewAccessor creates a new Accessor. A nil logger discards diagnostics.
func NewAccessor(kv fixitquick.KV, logger *slog.Logger) *Accessor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Accessor{kv: kv, logger: logger, Now: time.Now}
}

// Initialize writes the schema version marker if it is not already present.
// It must be called once during application startup, before any other
// storage access.
func (a *Accessor) Initialize(ctx context.Context) bool {
	_, ok, err := a.kv.Get(ctx, KeyStorageVersion)
	if err != nil {
		a.logger.Error("storage version check failed", "err", err)
		return false
	}
	if ok {
		return true
	}
	if err := a.kv.Set(ctx, KeyStorageVersion, strconv.Itoa(Version)); err != nil {
		a.logger.Error("storage version write failed", "err", err)
		return false
	}
	return true
}

// Remove deletes a key.
func (a *Accessor) Remove(ctx context.Context, key string) bool {
	if err := a.kv.Delete(ctx, key); err != nil {
		a.logger.Error("storage remove failed", "key", key, "err", err)
		return false
	}
	return true
}

// ClearApp deletes every key under the application prefix, including
// dynamically named ones such as per-user bookmark lists.
func (a *Accessor) ClearApp(ctx context.Context) bool {
	keys, err := a.kv.Keys(ctx, Prefix)
	if err != nil {
		a.logger.Error("storage key enumeration failed", "err", err)
		return false
	}

	ok := true
	for _, key := range keys {
		if err := a.kv.Delete(ctx, key); err != nil {
			a.logger.Error("storage remove failed", "key", key, "err", err)
			ok = false
		}
	}
	return ok
}

// Set wraps value in a versioned envelope and persists it. A positive ttl
// sets an absolute expiry; zero or negative means no expiration.
func Set[T any](ctx context.Context, a *Accessor, key string, value T, ttl time.Duration) bool {
	item := Item[T]{Value: value, Version: Version}
	if ttl > 0 {
		expiry := a.Now().Add(ttl).UnixMilli()
		item.Expiry = &expiry
	}

	data, err := json.Marshal(item)
	if err != nil {
		a.logger.Error("storage marshal failed", "key", key, "err", err)
		return false
	}

	if err := a.kv.Set(ctx, key, string(data)); err != nil {
		a.logger.Error("storage write failed", "key", key, "err", err)
		return false
	}
	return true
}

// Get returns the value stored under key, or defaultValue if the key is
// absent, the payload is corrupt, or the item has expired. An expired item
// is deleted as a side effect.
func Get[T any](ctx context.Context, a *Accessor, key string, defaultValue T) T {
	raw, ok, err := a.kv.Get(ctx, key)
	if err != nil {
		a.logger.Error("storage read failed", "key", key, "err", err)
		return defaultValue
	}
	if !ok {
		return defaultValue
	}

	var item Item[T]
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		a.logger.Error("storage payload corrupt", "key", key, "err", err)
		return defaultValue
	}

	// Stale versions are observed but not transformed; migration is a
	// forward-compat hook only.
	if item.Version < Version {
		a.logger.Debug("storage item from older schema", "key", key, "version", item.Version)
	}

	if item.Expiry != nil && a.Now().UnixMilli() > *item.Expiry {
		if err := a.kv.Delete(ctx, key); err != nil {
			a.logger.Error("expired item removal failed", "key", key, "err", err)
		}
		return defaultValue
	}

	return item.Value
}
