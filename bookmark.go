package fixitquick

import (
	"context"
	"time"
)

// AnonymousUserID is the storage scope used for bookmarks when no user is
// logged in. Anonymous bookmarks are shared by every unauthenticated session
// on the same machine and are not migrated when a user later logs in.
const AnonymousUserID = "anonymous"

// BookmarkedSolution records that a solution was bookmarked.
type BookmarkedSolution struct {
	ID        string    `json:"id"`
	DateAdded time.Time `json:"dateAdded"`
}

// BookmarkService manages per-user solution bookmarks. All operations are
// scoped to the active user, falling back to AnonymousUserID when no user
// is logged in.
type BookmarkService interface {
	// Add bookmarks a solution. Adding an already-bookmarked solution is
	// a no-op. Returns ENOTFOUND if the solution is not in the catalog.
	Add(ctx context.Context, solutionID string) error

	// Remove deletes a bookmark. Removing an absent bookmark is a no-op.
	Remove(ctx context.Context, solutionID string) error

	// Has reports whether a solution is bookmarked.
	Has(ctx context.Context, solutionID string) bool

	// List returns the bookmarked solutions joined against the catalog,
	// most recently bookmarked first. Bookmarks whose solution no longer
	// exists are dropped.
	List(ctx context.Context) ([]*Solution, error)

	// Clear removes every bookmark in the active user's scope.
	Clear(ctx context.Context) error
}
