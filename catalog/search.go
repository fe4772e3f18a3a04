package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/fixitquick/fixitquick"
)

// Compile-time interface verification.
var _ fixitquick.SearchService = (*Searcher)(nil)

// Searcher implements fixitquick.SearchService as a linear substring scan
// over the catalog. There is no ranking; results preserve catalog order.
type Searcher struct {
	catalog *Service

	// Delay, if positive, is slept before returning results so callers
	// can exercise the same asynchronous presentation an interactive
	// frontend would use. The sleep honors context cancellation.
	Delay time.Duration
}

// NewSearcher creates a Searcher over the given catalog.
func NewSearcher(catalog *Service) *Searcher {
	return &Searcher{catalog: catalog}
}

// Search returns solutions whose title, short description, or any step
// title or description contains the query, case-insensitively. An empty or
// whitespace-only query yields no results.
func (s *Searcher) Search(ctx context.Context, query string) ([]*fixitquick.Solution, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Delay):
		}
	}

	var results []*fixitquick.Solution
	for _, sol := range s.catalog.Solutions() {
		if matches(sol, query) {
			results = append(results, sol)
		}
	}
	return results, nil
}

func matches(sol *fixitquick.Solution, query string) bool {
	if strings.Contains(strings.ToLower(sol.Title), query) ||
		strings.Contains(strings.ToLower(sol.ShortDescription), query) {
		return true
	}
	for _, step := range sol.Steps {
		if strings.Contains(strings.ToLower(step.Title), query) ||
			strings.Contains(strings.ToLower(step.Description), query) {
			return true
		}
	}
	return false
}
