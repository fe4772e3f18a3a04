// Package catalog provides the static, compiled-in solution catalog and
// the linear search index over it.
package catalog

import "github.com/fixitquick/fixitquick"

// Compile-time interface verification.
var _ fixitquick.CatalogService = (*Service)(nil)

// Service implements fixitquick.CatalogService over the compiled-in data.
// The catalog is immutable; a Service is safe for concurrent use.
type Service struct {
	categories  []*fixitquick.Category
	solutions   []*fixitquick.Solution
	categoryIdx map[string]*fixitquick.Category
	solutionIdx map[string]*fixitquick.Solution
}

// NewService creates a Service over the built-in catalog.
func NewService() *Service {
	return newService(builtinCategories, builtinSolutions)
}

func newService(categories []*fixitquick.Category, solutions []*fixitquick.Solution) *Service {
	s := &Service{
		categories:  categories,
		solutions:   solutions,
		categoryIdx: make(map[string]*fixitquick.Category, len(categories)),
		solutionIdx: make(map[string]*fixitquick.Solution, len(solutions)),
	}
	for _, c := range categories {
		s.categoryIdx[c.ID] = c
	}
	for _, sol := range solutions {
		s.solutionIdx[sol.ID] = sol
	}
	return s
}

// Categories returns all categories in catalog order.
func (s *Service) Categories() []*fixitquick.Category {
	return s.categories
}

// CategoryByID retrieves a category by ID.
func (s *Service) CategoryByID(id string) (*fixitquick.Category, error) {
	c, ok := s.categoryIdx[id]
	if !ok {
		return nil, fixitquick.Errorf(fixitquick.ENOTFOUND, "category %q not found", id)
	}
	return c, nil
}

// Solutions returns all solutions in catalog order.
func (s *Service) Solutions() []*fixitquick.Solution {
	return s.solutions
}

// SolutionByID retrieves a solution by ID.
func (s *Service) SolutionByID(id string) (*fixitquick.Solution, error) {
	sol, ok := s.solutionIdx[id]
	if !ok {
		return nil, fixitquick.Errorf(fixitquick.ENOTFOUND, "solution %q not found", id)
	}
	return sol, nil
}

// SolutionsByCategory returns the solutions belonging to a category, in
// catalog order.
func (s *Service) SolutionsByCategory(categoryID string) []*fixitquick.Solution {
	var out []*fixitquick.Solution
	for _, sol := range s.solutions {
		if sol.Category == categoryID {
			out = append(out, sol)
		}
	}
	return out
}

// Related returns the solutions referenced by a solution's related list,
// dropping ids that are not in the catalog.
func (s *Service) Related(id string) []*fixitquick.Solution {
	sol, ok := s.solutionIdx[id]
	if !ok {
		return nil
	}

	var out []*fixitquick.Solution
	for _, relatedID := range sol.RelatedSolutions {
		if related, ok := s.solutionIdx[relatedID]; ok {
			out = append(out, related)
		}
	}
	return out
}
