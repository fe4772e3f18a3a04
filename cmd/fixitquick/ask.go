package main

import (
	"fmt"
	"time"

	"github.com/fixitquick/fixitquick"
	"github.com/fixitquick/fixitquick/gemini"
)

// AskCmd asks the AI assistant a question, carrying the stored chat history
// for conversational context.
type AskCmd struct {
	Question string `arg:"" optional:"" help:"The question to ask."`
	Forget   bool   `help:"Clear the stored chat history first."`
}

func (c *AskCmd) Run(deps *Dependencies) error {
	if c.Forget {
		if err := deps.ChatHistory.Clear(deps.Ctx); err != nil {
			return fmt.Errorf("failed to clear chat history: %w", err)
		}
		fmt.Fprintln(deps.Stdout, "Chat history cleared")
		if c.Question == "" {
			return nil
		}
	}

	if c.Question == "" {
		return fmt.Errorf("nothing to ask. Run 'fixitquick ask \"your question\"'")
	}

	history, err := deps.ChatHistory.Messages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Warning: could not load chat history: %v\n", err)
	}

	logRetry := func(format string, args ...any) {
		fmt.Fprintf(deps.Stderr, format+"\n", args...)
	}

	answer, err := gemini.ReplyWithRetry(deps.Ctx, deps.Assistant, history, c.Question, logRetry)
	if err != nil {
		return fmt.Errorf("%s", gemini.UserMessage(err))
	}

	now := time.Now()
	appendErr := deps.ChatHistory.Append(deps.Ctx,
		fixitquick.Message{
			Role:      fixitquick.RoleUser,
			Content:   c.Question,
			Timestamp: now,
			Topic:     fixitquick.DetectTopic(c.Question),
		},
		fixitquick.Message{
			Role:      fixitquick.RoleBot,
			Content:   answer,
			Timestamp: now,
			Topic:     fixitquick.DetectTopic(answer),
		},
	)
	if appendErr != nil {
		fmt.Fprintf(deps.Stderr, "Warning: could not save chat history: %v\n", appendErr)
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
