package storage

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

// Compile-time interface verification.
var _ fixitquick.RecentlyViewedService = (*RecentlyViewedService)(nil)

// RecentlyViewedService implements fixitquick.RecentlyViewedService over
// the versioned accessor. The history is machine-wide, not per-user.
type RecentlyViewedService struct {
	accessor *Accessor
	broker   *Broker
	catalog  fixitquick.CatalogService
}

// NewRecentlyViewedService creates a new RecentlyViewedService.
func NewRecentlyViewedService(a *Accessor, broker *Broker, catalog fixitquick.CatalogService) *RecentlyViewedService {
	return &RecentlyViewedService{accessor: a, broker: broker, catalog: catalog}
}

// Record marks a solution as viewed. An already-present solution moves to
// the front with a refreshed timestamp; the history never exceeds
// fixitquick.RecentlyViewedLimit entries.
func (s *RecentlyViewedService) Record(ctx context.Context, solutionID string) error {
	if _, err := s.catalog.SolutionByID(solutionID); err != nil {
		return err
	}

	mutate(ctx, s.accessor, s.broker, KeyRecentlyViewed, []fixitquick.RecentlyViewedItem(nil),
		func(list []fixitquick.RecentlyViewedItem) []fixitquick.RecentlyViewedItem {
			next := []fixitquick.RecentlyViewedItem{{
				ID:       solutionID,
				ViewedAt: s.accessor.Now(),
			}}
			for _, item := range list {
				if item.ID != solutionID {
					next = append(next, item)
				}
			}
			if len(next) > fixitquick.RecentlyViewedLimit {
				next = next[:fixitquick.RecentlyViewedLimit]
			}
			return next
		})
	return nil
}

// List returns the recently viewed solutions, most recent first. Entries
// whose solution is no longer in the catalog are dropped.
func (s *RecentlyViewedService) List(ctx context.Context) ([]*fixitquick.Solution, error) {
	list := Get(ctx, s.accessor, KeyRecentlyViewed, []fixitquick.RecentlyViewedItem(nil))

	var solutions []*fixitquick.Solution
	for _, item := range list {
		solution, err := s.catalog.SolutionByID(item.ID)
		if err != nil {
			continue
		}
		solutions = append(solutions, solution)
	}
	return solutions, nil
}

// Clear empties the history.
func (s *RecentlyViewedService) Clear(ctx context.Context) error {
	if s.accessor.Remove(ctx, KeyRecentlyViewed) {
		s.broker.Publish(KeyRecentlyViewed)
	}
	return nil
}
