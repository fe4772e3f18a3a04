package storage

import (
	"context"
	"sort"

	"github.com/fixitquick/fixitquick"
)

// Compile-time interface verification.
var _ fixitquick.BookmarkService = (*BookmarkService)(nil)

// BookmarkService implements fixitquick.BookmarkService over the versioned
// accessor. The bookmark list is keyed by the active user id, falling back
// to the shared anonymous scope, so logging in or out switches lists
// without migrating entries.
type BookmarkService struct {
	accessor *Accessor
	broker   *Broker
	catalog  fixitquick.CatalogService
	auth     fixitquick.AuthService
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(a *Accessor, broker *Broker, catalog fixitquick.CatalogService, auth fixitquick.AuthService) *BookmarkService {
	return &BookmarkService{accessor: a, broker: broker, catalog: catalog, auth: auth}
}

// key resolves the bookmark list key for the active user.
func (s *BookmarkService) key(ctx context.Context) string {
	userID := fixitquick.AnonymousUserID
	if user, err := s.auth.CurrentUser(ctx); err == nil {
		userID = user.ID
	}
	return BookmarksKey(userID)
}

// Add bookmarks a solution. Adding an already-bookmarked solution is a
// no-op.
func (s *BookmarkService) Add(ctx context.Context, solutionID string) error {
	if _, err := s.catalog.SolutionByID(solutionID); err != nil {
		return err
	}

	mutate(ctx, s.accessor, s.broker, s.key(ctx), []fixitquick.BookmarkedSolution(nil),
		func(list []fixitquick.BookmarkedSolution) []fixitquick.BookmarkedSolution {
			for _, b := range list {
				if b.ID == solutionID {
					return list
				}
			}
			return append(list, fixitquick.BookmarkedSolution{
				ID:        solutionID,
				DateAdded: s.accessor.Now(),
			})
		})
	return nil
}

// Remove deletes a bookmark. Removing an absent bookmark is a no-op.
func (s *BookmarkService) Remove(ctx context.Context, solutionID string) error {
	mutate(ctx, s.accessor, s.broker, s.key(ctx), []fixitquick.BookmarkedSolution(nil),
		func(list []fixitquick.BookmarkedSolution) []fixitquick.BookmarkedSolution {
			filtered := list[:0]
			for _, b := range list {
				if b.ID != solutionID {
					filtered = append(filtered, b)
				}
			}
			return filtered
		})
	return nil
}

// Has reports whether a solution is bookmarked.
func (s *BookmarkService) Has(ctx context.Context, solutionID string) bool {
	list := Get(ctx, s.accessor, s.key(ctx), []fixitquick.BookmarkedSolution(nil))
	for _, b := range list {
		if b.ID == solutionID {
			return true
		}
	}
	return false
}

// List returns the bookmarked solutions, most recently bookmarked first.
// Bookmarks whose solution is no longer in the catalog are dropped.
func (s *BookmarkService) List(ctx context.Context) ([]*fixitquick.Solution, error) {
	list := Get(ctx, s.accessor, s.key(ctx), []fixitquick.BookmarkedSolution(nil))

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].DateAdded.After(list[j].DateAdded)
	})

	var solutions []*fixitquick.Solution
	for _, b := range list {
		solution, err := s.catalog.SolutionByID(b.ID)
		if err != nil {
			continue
		}
		solutions = append(solutions, solution)
	}
	return solutions, nil
}

// Clear removes every bookmark in the active user's scope.
func (s *BookmarkService) Clear(ctx context.Context) error {
	key := s.key(ctx)
	if s.accessor.Remove(ctx, key) {
		s.broker.Publish(key)
	}
	return nil
}
