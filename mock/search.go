package mock

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

var _ fixitquick.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of fixitquick.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string) ([]*fixitquick.Solution, error)
}

func (s *SearchService) Search(ctx context.Context, query string) ([]*fixitquick.Solution, error) {
	return s.SearchFn(ctx, query)
}
