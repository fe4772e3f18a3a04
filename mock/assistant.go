package mock

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

var _ fixitquick.Assistant = (*Assistant)(nil)

// Assistant is a mock implementation of fixitquick.Assistant.
type Assistant struct {
	ReplyFn func(ctx context.Context, history []fixitquick.Message, question string) (string, error)
}

func (a *Assistant) Reply(ctx context.Context, history []fixitquick.Message, question string) (string, error) {
	return a.ReplyFn(ctx, history, question)
}

var _ fixitquick.ChatHistoryService = (*ChatHistoryService)(nil)

// ChatHistoryService is a mock implementation of
// fixitquick.ChatHistoryService.
type ChatHistoryService struct {
	MessagesFn func(ctx context.Context) ([]fixitquick.Message, error)
	AppendFn   func(ctx context.Context, msgs ...fixitquick.Message) error
	ClearFn    func(ctx context.Context) error
}

func (s *ChatHistoryService) Messages(ctx context.Context) ([]fixitquick.Message, error) {
	return s.MessagesFn(ctx)
}

func (s *ChatHistoryService) Append(ctx context.Context, msgs ...fixitquick.Message) error {
	return s.AppendFn(ctx, msgs...)
}

func (s *ChatHistoryService) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
