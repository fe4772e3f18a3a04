package mock

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

var _ fixitquick.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of fixitquick.BookmarkService.
type BookmarkService struct {
	AddFn    func(ctx context.Context, solutionID string) error
	RemoveFn func(ctx context.Context, solutionID string) error
	HasFn    func(ctx context.Context, solutionID string) bool
	ListFn   func(ctx context.Context) ([]*fixitquick.Solution, error)
	ClearFn  func(ctx context.Context) error
}

func (s *BookmarkService) Add(ctx context.Context, solutionID string) error {
	return s.AddFn(ctx, solutionID)
}

func (s *BookmarkService) Remove(ctx context.Context, solutionID string) error {
	return s.RemoveFn(ctx, solutionID)
}

func (s *BookmarkService) Has(ctx context.Context, solutionID string) bool {
	return s.HasFn(ctx, solutionID)
}

func (s *BookmarkService) List(ctx context.Context) ([]*fixitquick.Solution, error) {
	return s.ListFn(ctx)
}

func (s *BookmarkService) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
