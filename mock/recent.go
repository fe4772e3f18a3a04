package mock

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

var _ fixitquick.RecentlyViewedService = (*RecentlyViewedService)(nil)

// RecentlyViewedService is a mock implementation of
// fixitquick.RecentlyViewedService.
type RecentlyViewedService struct {
	RecordFn func(ctx context.Context, solutionID string) error
	ListFn   func(ctx context.Context) ([]*fixitquick.Solution, error)
	ClearFn  func(ctx context.Context) error
}

func (s *RecentlyViewedService) Record(ctx context.Context, solutionID string) error {
	return s.RecordFn(ctx, solutionID)
}

func (s *RecentlyViewedService) List(ctx context.Context) ([]*fixitquick.Solution, error) {
	return s.ListFn(ctx)
}

func (s *RecentlyViewedService) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
