package storage

import (
	"context"
	"time"

	"github.com/fixitquick/fixitquick"
)

// Transcript pruning rules, applied on every append.
const (
	chatHistoryMaxAge   = 24 * time.Hour
	chatHistoryMaxMsgs  = 20
	chatHistoryMaxChars = 1000
)

// Compile-time interface verification.
var _ fixitquick.ChatHistoryService = (*ChatHistoryService)(nil)

// ChatHistoryService implements fixitquick.ChatHistoryService over the
// versioned accessor.
type ChatHistoryService struct {
	accessor *Accessor
	broker   *Broker
}

// NewChatHistoryService creates a new ChatHistoryService.
func NewChatHistoryService(a *Accessor, broker *Broker) *ChatHistoryService {
	return &ChatHistoryService{accessor: a, broker: broker}
}

// Messages returns the stored transcript, oldest first.
func (s *ChatHistoryService) Messages(ctx context.Context) ([]fixitquick.Message, error) {
	return Get(ctx, s.accessor, KeyChatHistory, []fixitquick.Message(nil)), nil
}

// Append adds messages to the transcript and prunes it: only messages from
// the last 24 hours are kept, at most 20 of them, and contents over 1000
// characters are truncated.
func (s *ChatHistoryService) Append(ctx context.Context, msgs ...fixitquick.Message) error {
	cutoff := s.accessor.Now().Add(-chatHistoryMaxAge)

	mutate(ctx, s.accessor, s.broker, KeyChatHistory, []fixitquick.Message(nil),
		func(history []fixitquick.Message) []fixitquick.Message {
			history = append(history, msgs...)

			recent := history[:0]
			for _, msg := range history {
				if msg.Timestamp.After(cutoff) {
					recent = append(recent, msg)
				}
			}
			if len(recent) > chatHistoryMaxMsgs {
				recent = recent[len(recent)-chatHistoryMaxMsgs:]
			}

			for i, msg := range recent {
				if runes := []rune(msg.Content); len(runes) > chatHistoryMaxChars {
					recent[i].Content = string(runes[:chatHistoryMaxChars]) + "..."
				}
			}
			return recent
		})
	return nil
}

// Clear discards the transcript.
func (s *ChatHistoryService) Clear(ctx context.Context) error {
	if s.accessor.Remove(ctx, KeyChatHistory) {
		s.broker.Publish(KeyChatHistory)
	}
	return nil
}
