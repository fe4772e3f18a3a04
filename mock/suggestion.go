package mock

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

var _ fixitquick.SuggestionService = (*SuggestionService)(nil)

// SuggestionService is a mock implementation of
// fixitquick.SuggestionService.
type SuggestionService struct {
	SubmitFn func(ctx context.Context, input fixitquick.SuggestionInput) (*fixitquick.Suggestion, error)
	ListFn   func(ctx context.Context) ([]*fixitquick.Suggestion, error)
}

func (s *SuggestionService) Submit(ctx context.Context, input fixitquick.SuggestionInput) (*fixitquick.Suggestion, error) {
	return s.SubmitFn(ctx, input)
}

func (s *SuggestionService) List(ctx context.Context) ([]*fixitquick.Suggestion, error) {
	return s.ListFn(ctx)
}
