package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fixitquick/fixitquick/cmd/fixitquick"
	"github.com/fixitquick/fixitquick/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows the current theme", func(t *testing.T) {
		t.Parallel()

		theme := &mock.ThemeService{
			DarkModeFn: func(_ context.Context) bool { return false },
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Theme:  theme,
		}

		cmd := &main.ThemeCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Theme: light")
	})

	t.Run("enables dark mode", func(t *testing.T) {
		t.Parallel()

		enabled := false
		theme := &mock.ThemeService{
			SetDarkModeFn: func(_ context.Context, v bool) { enabled = v },
			DarkModeFn:    func(_ context.Context) bool { return enabled },
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Theme:  theme,
		}

		cmd := &main.ThemeCmd{Dark: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, enabled)
		assert.Contains(t, stdout.String(), "Theme: dark")
	})

	t.Run("toggles the theme", func(t *testing.T) {
		t.Parallel()

		dark := false
		theme := &mock.ThemeService{
			ToggleFn: func(_ context.Context) bool {
				dark = !dark
				return dark
			},
			DarkModeFn: func(_ context.Context) bool { return dark },
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Theme:  theme,
		}

		cmd := &main.ThemeCmd{Toggle: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Theme: dark")
	})
}
