package storage_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fixitquick/fixitquick"
	"github.com/fixitquick/fixitquick/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHistoryService_Append(t *testing.T) {
	t.Parallel()

	t.Run("appends in order", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewChatHistoryService(a, storage.NewBroker())
		ctx := context.Background()

		now := time.Now()
		require.NoError(t, s.Append(ctx,
			fixitquick.Message{Role: fixitquick.RoleUser, Content: "hello", Timestamp: now},
			fixitquick.Message{Role: fixitquick.RoleBot, Content: "hi there", Timestamp: now},
		))

		msgs, err := s.Messages(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hello", msgs[0].Content)
		assert.Equal(t, "hi there", msgs[1].Content)
	})

	t.Run("drops messages older than a day", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewChatHistoryService(a, storage.NewBroker())
		ctx := context.Background()

		now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
		a.Now = func() time.Time { return now }

		require.NoError(t, s.Append(ctx,
			fixitquick.Message{Role: fixitquick.RoleUser, Content: "stale", Timestamp: now.Add(-25 * time.Hour)},
			fixitquick.Message{Role: fixitquick.RoleUser, Content: "fresh", Timestamp: now.Add(-time.Hour)},
		))

		msgs, err := s.Messages(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "fresh", msgs[0].Content)
	})

	t.Run("keeps at most twenty messages", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewChatHistoryService(a, storage.NewBroker())
		ctx := context.Background()

		now := time.Now()
		for i := 0; i < 25; i++ {
			require.NoError(t, s.Append(ctx, fixitquick.Message{
				Role:      fixitquick.RoleUser,
				Content:   strings.Repeat("x", i+1),
				Timestamp: now,
			}))
		}

		msgs, err := s.Messages(ctx)
		require.NoError(t, err)
		assert.Len(t, msgs, 20)
		// The newest message survives; the oldest five were pruned.
		assert.Equal(t, strings.Repeat("x", 25), msgs[len(msgs)-1].Content)
		assert.Equal(t, strings.Repeat("x", 6), msgs[0].Content)
	})

	t.Run("truncates over-long contents", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewChatHistoryService(a, storage.NewBroker())
		ctx := context.Background()

		require.NoError(t, s.Append(ctx, fixitquick.Message{
			Role:      fixitquick.RoleBot,
			Content:   strings.Repeat("a", 1500),
			Timestamp: time.Now(),
		}))

		msgs, err := s.Messages(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Len(t, msgs[0].Content, 1003)
		assert.True(t, strings.HasSuffix(msgs[0].Content, "..."))
	})
}

func TestChatHistoryService_Clear(t *testing.T) {
	t.Parallel()

	a, _ := mustOpenAccessor(t)
	s := storage.NewChatHistoryService(a, storage.NewBroker())
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, fixitquick.Message{
		Role:      fixitquick.RoleUser,
		Content:   "hello",
		Timestamp: time.Now(),
	}))
	require.NoError(t, s.Clear(ctx))

	msgs, err := s.Messages(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
