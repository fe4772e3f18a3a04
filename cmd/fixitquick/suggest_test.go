package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fixitquick/fixitquick"
	main "github.com/fixitquick/fixitquick/cmd/fixitquick"
	"github.com/fixitquick/fixitquick/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("submits a suggestion", func(t *testing.T) {
		t.Parallel()

		var received fixitquick.SuggestionInput
		suggestions := &mock.SuggestionService{
			SubmitFn: func(_ context.Context, input fixitquick.SuggestionInput) (*fixitquick.Suggestion, error) {
				received = input
				return &fixitquick.Suggestion{ID: "sugg-1", Title: input.Title}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         testContext(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Suggestions: suggestions,
		}

		cmd := &main.SuggestCmd{
			Title:       "Printer offline",
			Category:    "software",
			Description: "Printer shows as offline",
			Steps:       "Restart the spooler service",
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Printer offline", received.Title)
		assert.Equal(t, "software", received.Category)
		assert.Contains(t, stdout.String(), "sugg-1")
	})

	t.Run("returns error for duplicate suggestion", func(t *testing.T) {
		t.Parallel()

		suggestions := &mock.SuggestionService{
			SubmitFn: func(_ context.Context, _ fixitquick.SuggestionInput) (*fixitquick.Suggestion, error) {
				return nil, fixitquick.Errorf(fixitquick.ECONFLICT, "This suggestion has already been submitted.")
			},
		}

		deps := &main.Dependencies{
			Ctx:         testContext(),
			Stdout:      &bytes.Buffer{},
			Stderr:      &bytes.Buffer{},
			Suggestions: suggestions,
		}

		cmd := &main.SuggestCmd{
			Title:       "Printer offline",
			Category:    "software",
			Description: "Printer shows as offline",
			Steps:       "Restart the spooler service",
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already been submitted")
	})

	t.Run("lists stored suggestions", func(t *testing.T) {
		t.Parallel()

		suggestions := &mock.SuggestionService{
			ListFn: func(_ context.Context) ([]*fixitquick.Suggestion, error) {
				return []*fixitquick.Suggestion{
					{
						ID:          "sugg-1",
						Title:       "Printer offline",
						Category:    "software",
						SubmittedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         testContext(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Suggestions: suggestions,
		}

		cmd := &main.SuggestCmd{List: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Printer offline")
		assert.Contains(t, stdout.String(), "2025-06-01")
	})

	t.Run("list shows message when empty", func(t *testing.T) {
		t.Parallel()

		suggestions := &mock.SuggestionService{
			ListFn: func(_ context.Context) ([]*fixitquick.Suggestion, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         testContext(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Suggestions: suggestions,
		}

		cmd := &main.SuggestCmd{List: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No suggestions")
	})
}
