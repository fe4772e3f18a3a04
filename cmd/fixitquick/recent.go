package main

import "fmt"

// RecentCmd groups the recently-viewed subcommands.
type RecentCmd struct {
	List  RecentListCmd  `cmd:"" default:"1" help:"List recently viewed solutions."`
	Clear RecentClearCmd `cmd:"" help:"Clear the viewing history."`
}

// RecentListCmd lists recently viewed solutions, most recent first.
type RecentListCmd struct{}

func (c *RecentListCmd) Run(deps *Dependencies) error {
	solutions, err := deps.Recent.List(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to list recently viewed: %w", err)
	}

	if len(solutions) == 0 {
		fmt.Fprintln(deps.Stdout, "No recently viewed solutions.")
		return nil
	}

	printSolutionList(deps, solutions)
	return nil
}

// RecentClearCmd clears the viewing history.
type RecentClearCmd struct{}

func (c *RecentClearCmd) Run(deps *Dependencies) error {
	if err := deps.Recent.Clear(deps.Ctx); err != nil {
		return fmt.Errorf("failed to clear viewing history: %w", err)
	}
	fmt.Fprintln(deps.Stdout, "Viewing history cleared")
	return nil
}
