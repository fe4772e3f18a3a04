package main

import (
	"fmt"

	"github.com/fixitquick/fixitquick"
	"github.com/fixitquick/fixitquick/catalog"
)

// CategoriesCmd lists the troubleshooting categories.
type CategoriesCmd struct{}

func (c *CategoriesCmd) Run(deps *Dependencies) error {
	for _, cat := range deps.Catalog.Categories() {
		icon := catalog.ParseIcon(cat.Icon)
		fmt.Fprintf(deps.Stdout, "%s %-22s %s  (%s)\n", icon.Glyph(), cat.Name, cat.Description, cat.ID)
	}
	return nil
}

// SolutionsCmd lists solutions, optionally filtered by category.
type SolutionsCmd struct {
	Category string `help:"Only show solutions in this category." short:"c"`
}

func (c *SolutionsCmd) Run(deps *Dependencies) error {
	var solutions []*fixitquick.Solution
	if c.Category != "" {
		if _, err := deps.Catalog.CategoryByID(c.Category); err != nil {
			return fmt.Errorf("unknown category %q", c.Category)
		}
		solutions = deps.Catalog.SolutionsByCategory(c.Category)
	} else {
		solutions = deps.Catalog.Solutions()
	}

	printSolutionList(deps, solutions)
	return nil
}

// ShowCmd displays a single solution with its steps and records the view.
type ShowCmd struct {
	ID string `arg:"" help:"Solution ID to show."`
}

func (c *ShowCmd) Run(deps *Dependencies) error {
	solution, err := deps.Catalog.SolutionByID(c.ID)
	if err != nil {
		return fmt.Errorf("solution %q not found. Run 'fixitquick solutions' to list them", c.ID)
	}

	if err := deps.Recent.Record(deps.Ctx, solution.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "Warning: could not record view: %v\n", err)
	}

	fmt.Fprintf(deps.Stdout, "%s\n", solution.Title)
	fmt.Fprintf(deps.Stdout, "%s\n\n", solution.ShortDescription)
	if solution.Difficulty != "" {
		fmt.Fprintf(deps.Stdout, "Difficulty: %s\n", solution.Difficulty)
	}
	if cat, err := deps.Catalog.CategoryByID(solution.Category); err == nil {
		fmt.Fprintf(deps.Stdout, "Category:   %s\n", cat.Name)
	}
	if deps.Bookmarks.Has(deps.Ctx, solution.ID) {
		fmt.Fprintf(deps.Stdout, "Bookmarked: yes\n")
	}
	fmt.Fprintln(deps.Stdout)

	for i, step := range solution.Steps {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, step.Title)
		fmt.Fprintf(deps.Stdout, "   %s\n", step.Description)
	}

	if related := deps.Catalog.Related(solution.ID); len(related) > 0 {
		fmt.Fprintf(deps.Stdout, "\nRelated solutions:\n")
		for _, r := range related {
			fmt.Fprintf(deps.Stdout, "  %s  (%s)\n", r.Title, r.ID)
		}
	}

	return nil
}

// SearchCmd searches the catalog by keyword.
type SearchCmd struct {
	Query string `arg:"" help:"Search keyword."`
}

func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Search.Search(deps.Ctx, c.Query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No solutions found for %q.\n", c.Query)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d solution(s):\n", len(results))
	printSolutionList(deps, results)
	return nil
}

func printSolutionList(deps *Dependencies, solutions []*fixitquick.Solution) {
	for _, s := range solutions {
		difficulty := string(s.Difficulty)
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Fprintf(deps.Stdout, "%-24s %-8s %s\n", s.ID, difficulty, s.Title)
	}
}
