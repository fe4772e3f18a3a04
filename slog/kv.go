// Package slog provides logging decorators for fixitquick services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixitquick/fixitquick"
)

// Ensure LoggingKV implements fixitquick.KV.
var _ fixitquick.KV = (*LoggingKV)(nil)

// LoggingKV wraps a KV with debug logging for every store operation.
type LoggingKV struct {
	next   fixitquick.KV
	logger *slog.Logger
}

// NewLoggingKV creates a new LoggingKV.
func NewLoggingKV(next fixitquick.KV, logger *slog.Logger) *LoggingKV {
	return &LoggingKV{next: next, logger: logger}
}

// Get delegates to the wrapped store and logs the operation.
func (s *LoggingKV) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("kv get",
			"key", key,
			"found", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Get(ctx, key)
}

// Set delegates to the wrapped store and logs the operation.
func (s *LoggingKV) Set(ctx context.Context, key, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("kv set",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Set(ctx, key, value)
}

// Delete delegates to the wrapped store and logs the operation.
func (s *LoggingKV) Delete(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("kv delete",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Delete(ctx, key)
}

// Keys delegates to the wrapped store and logs the operation.
func (s *LoggingKV) Keys(ctx context.Context, prefix string) (keys []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("kv keys",
			"prefix", prefix,
			"count", len(keys),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Keys(ctx, prefix)
}
