package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fixitquick/fixitquick"
	main "github.com/fixitquick/fixitquick/cmd/fixitquick"
	"github.com/fixitquick/fixitquick/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("list prints recently viewed solutions", func(t *testing.T) {
		t.Parallel()

		recent := &mock.RecentlyViewedService{
			ListFn: func(_ context.Context) ([]*fixitquick.Solution, error) {
				return []*fixitquick.Solution{
					{ID: "frozen-screen", Title: "Fix Frozen or Unresponsive Screen"},
					{ID: "slow-internet", Title: "Slow Internet Connection"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Recent: recent,
		}

		cmd := &main.RecentListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "frozen-screen")
		assert.Contains(t, stdout.String(), "slow-internet")
	})

	t.Run("list shows message when empty", func(t *testing.T) {
		t.Parallel()

		recent := &mock.RecentlyViewedService{
			ListFn: func(_ context.Context) ([]*fixitquick.Solution, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Recent: recent,
		}

		cmd := &main.RecentListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No recently viewed")
	})

	t.Run("clear empties the history", func(t *testing.T) {
		t.Parallel()

		cleared := false
		recent := &mock.RecentlyViewedService{
			ClearFn: func(_ context.Context) error {
				cleared = true
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Recent: recent,
		}

		cmd := &main.RecentClearCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, cleared)
		assert.Contains(t, stdout.String(), "Viewing history cleared")
	})
}
