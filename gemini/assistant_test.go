package gemini_test

import (
	"testing"

	"github.com/fixitquick/fixitquick"
	"github.com/fixitquick/fixitquick/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, *config.Temperature, 0.001)
	require.NotNil(t, config.TopK)
	assert.InDelta(t, 40, *config.TopK, 0.001)
	require.NotNil(t, config.TopP)
	assert.InDelta(t, 0.95, *config.TopP, 0.001)
	assert.Equal(t, int32(800), config.MaxOutputTokens)

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "tech support")
}

func TestBuildContents(t *testing.T) {
	t.Parallel()

	t.Run("maps roles and appends the question last", func(t *testing.T) {
		t.Parallel()

		history := []fixitquick.Message{
			{Role: fixitquick.RoleUser, Content: "my wifi is down"},
			{Role: fixitquick.RoleBot, Content: "Try restarting your router."},
		}

		contents := gemini.BuildContents(history, "it still fails")

		require.Len(t, contents, 3)
		assert.Equal(t, "user", contents[0].Role)
		assert.Equal(t, "my wifi is down", contents[0].Parts[0].Text)
		assert.Equal(t, "model", contents[1].Role)
		assert.Equal(t, "user", contents[2].Role)
		assert.Equal(t, "it still fails", contents[2].Parts[0].Text)
	})

	t.Run("windows the history to the last eight messages", func(t *testing.T) {
		t.Parallel()

		var history []fixitquick.Message
		for i := 0; i < 12; i++ {
			role := fixitquick.RoleUser
			if i%2 == 1 {
				role = fixitquick.RoleBot
			}
			history = append(history, fixitquick.Message{Role: role, Content: string(rune('a' + i))})
		}

		contents := gemini.BuildContents(history, "question")

		// 8 windowed history entries plus the question.
		require.Len(t, contents, 9)
		assert.Equal(t, "e", contents[0].Parts[0].Text)
		assert.Equal(t, "question", contents[8].Parts[0].Text)
	})

	t.Run("no history sends only the question", func(t *testing.T) {
		t.Parallel()

		contents := gemini.BuildContents(nil, "question")

		require.Len(t, contents, 1)
		assert.Equal(t, "user", contents[0].Role)
	})
}
