package fixitquick

import (
	"context"
	"time"
)

// RecentlyViewedLimit caps how many recently viewed entries are kept.
const RecentlyViewedLimit = 8

// RecentlyViewedItem records that a solution was viewed.
type RecentlyViewedItem struct {
	ID       string    `json:"id"`
	ViewedAt time.Time `json:"viewedAt"`
}

// RecentlyViewedService tracks the solutions most recently viewed on this
// machine. The history holds at most RecentlyViewedLimit entries with no
// duplicate ids; viewing an already-present solution moves it to the front
// and refreshes its timestamp.
type RecentlyViewedService interface {
	// Record marks a solution as viewed.
	// Returns ENOTFOUND if the solution is not in the catalog.
	Record(ctx context.Context, solutionID string) error

	// List returns the recently viewed solutions joined against the
	// catalog, most recent first. Entries whose solution no longer
	// exists are dropped.
	List(ctx context.Context) ([]*Solution, error)

	// Clear empties the history.
	Clear(ctx context.Context) error
}
