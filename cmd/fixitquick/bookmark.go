package main

import "fmt"

// BookmarkCmd groups the bookmark subcommands.
type BookmarkCmd struct {
	Add    BookmarkAddCmd    `cmd:"" help:"Bookmark a solution."`
	Remove BookmarkRemoveCmd `cmd:"" help:"Remove a bookmark."`
	List   BookmarkListCmd   `cmd:"" default:"1" help:"List bookmarked solutions."`
	Clear  BookmarkClearCmd  `cmd:"" help:"Remove all bookmarks."`
}

// BookmarkAddCmd bookmarks a solution.
type BookmarkAddCmd struct {
	ID string `arg:"" help:"Solution ID to bookmark."`
}

func (c *BookmarkAddCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.Add(deps.Ctx, c.ID); err != nil {
		return fmt.Errorf("failed to bookmark %q: %w", c.ID, err)
	}
	fmt.Fprintf(deps.Stdout, "Bookmarked %s\n", c.ID)
	return nil
}

// BookmarkRemoveCmd removes a bookmark.
type BookmarkRemoveCmd struct {
	ID string `arg:"" help:"Solution ID to remove."`
}

func (c *BookmarkRemoveCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.Remove(deps.Ctx, c.ID); err != nil {
		return fmt.Errorf("failed to remove bookmark %q: %w", c.ID, err)
	}
	fmt.Fprintf(deps.Stdout, "Removed %s\n", c.ID)
	return nil
}

// BookmarkListCmd lists bookmarked solutions.
type BookmarkListCmd struct{}

func (c *BookmarkListCmd) Run(deps *Dependencies) error {
	solutions, err := deps.Bookmarks.List(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to list bookmarks: %w", err)
	}

	if len(solutions) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks yet. Run 'fixitquick bookmark add <id>' to add one.")
		return nil
	}

	printSolutionList(deps, solutions)
	return nil
}

// BookmarkClearCmd removes every bookmark in the active scope.
type BookmarkClearCmd struct{}

func (c *BookmarkClearCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.Clear(deps.Ctx); err != nil {
		return fmt.Errorf("failed to clear bookmarks: %w", err)
	}
	fmt.Fprintln(deps.Stdout, "Bookmarks cleared")
	return nil
}
