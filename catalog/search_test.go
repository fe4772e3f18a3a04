package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/fixitquick/fixitquick/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	newSearcher := func() *catalog.Searcher {
		return catalog.NewSearcher(catalog.NewService())
	}

	t.Run("matches titles case-insensitively", func(t *testing.T) {
		t.Parallel()

		results, err := newSearcher().Search(context.Background(), "WI-FI")

		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "wifi-not-connecting", results[0].ID)
	})

	t.Run("matches short descriptions", func(t *testing.T) {
		t.Parallel()

		results, err := newSearcher().Search(context.Background(), "function keys")

		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "function-keys-locked", results[0].ID)
	})

	t.Run("matches step content", func(t *testing.T) {
		t.Parallel()

		// "router" appears only in step text, never in a title.
		results, err := newSearcher().Search(context.Background(), "router")

		require.NoError(t, err)
		ids := make([]string, 0, len(results))
		for _, sol := range results {
			ids = append(ids, sol.ID)
		}
		assert.Contains(t, ids, "slow-internet")
	})

	t.Run("empty query yields no results", func(t *testing.T) {
		t.Parallel()

		results, err := newSearcher().Search(context.Background(), "")
		require.NoError(t, err)
		assert.Nil(t, results)
	})

	t.Run("whitespace-only query yields no results", func(t *testing.T) {
		t.Parallel()

		results, err := newSearcher().Search(context.Background(), "   ")
		require.NoError(t, err)
		assert.Nil(t, results)
	})

	t.Run("no match yields empty results", func(t *testing.T) {
		t.Parallel()

		results, err := newSearcher().Search(context.Background(), "zzz-no-match")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("results preserve catalog order", func(t *testing.T) {
		t.Parallel()

		// "keyboard" matches several solutions; catalog order must hold.
		results, err := newSearcher().Search(context.Background(), "keyboard")

		require.NoError(t, err)
		require.GreaterOrEqual(t, len(results), 2)
		assert.Equal(t, "function-keys-locked", results[0].ID)
	})

	t.Run("delay honors context cancellation", func(t *testing.T) {
		t.Parallel()

		s := newSearcher()
		s.Delay = time.Minute

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Search(ctx, "wi-fi")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseIcon(t *testing.T) {
	t.Parallel()

	t.Run("maps known names", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, catalog.IconKeyboard, catalog.ParseIcon("Keyboard"))
		assert.Equal(t, catalog.IconVolume, catalog.ParseIcon("Volume2"))
		assert.Equal(t, catalog.IconWifi, catalog.ParseIcon("Wifi"))
	})

	t.Run("unknown names fall back to the default", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, catalog.IconDefault, catalog.ParseIcon("Sparkles"))
	})

	t.Run("every catalog category resolves to a glyph", func(t *testing.T) {
		t.Parallel()

		for _, c := range catalog.NewService().Categories() {
			assert.NotEmpty(t, catalog.ParseIcon(c.Icon).Glyph(), c.ID)
		}
	})

	t.Run("unmapped icon value still yields the fallback glyph", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, catalog.IconDefault.Glyph(), catalog.Icon("bogus").Glyph())
	})
}

func TestDebouncer(t *testing.T) {
	t.Parallel()

	t.Run("runs the callback after the delay", func(t *testing.T) {
		t.Parallel()

		d := catalog.NewDebouncer(10 * time.Millisecond)
		done := make(chan struct{})

		d.Call(func() { close(done) })

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("callback never ran")
		}
	})

	t.Run("rapid calls collapse to the last", func(t *testing.T) {
		t.Parallel()

		d := catalog.NewDebouncer(50 * time.Millisecond)
		got := make(chan string, 3)

		d.Call(func() { got <- "first" })
		d.Call(func() { got <- "second" })
		d.Call(func() { got <- "third" })

		select {
		case v := <-got:
			assert.Equal(t, "third", v)
		case <-time.After(time.Second):
			t.Fatal("callback never ran")
		}

		// No earlier callback fires afterwards.
		select {
		case v := <-got:
			t.Fatalf("unexpected extra callback %q", v)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("stop cancels the pending call", func(t *testing.T) {
		t.Parallel()

		d := catalog.NewDebouncer(20 * time.Millisecond)
		called := make(chan struct{}, 1)

		d.Call(func() { called <- struct{}{} })
		d.Stop()

		select {
		case <-called:
			t.Fatal("callback ran after Stop")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
