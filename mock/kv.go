// Package mock provides function-field mock implementations of fixitquick
// interfaces for tests.
package mock

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

var _ fixitquick.KV = (*KV)(nil)

// KV is a mock implementation of fixitquick.KV.
type KV struct {
	GetFn    func(ctx context.Context, key string) (string, bool, error)
	SetFn    func(ctx context.Context, key, value string) error
	DeleteFn func(ctx context.Context, key string) error
	KeysFn   func(ctx context.Context, prefix string) ([]string, error)
}

func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	return s.GetFn(ctx, key)
}

func (s *KV) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

func (s *KV) Delete(ctx context.Context, key string) error {
	return s.DeleteFn(ctx, key)
}

func (s *KV) Keys(ctx context.Context, prefix string) ([]string, error) {
	return s.KeysFn(ctx, prefix)
}
