package main

import (
	"fmt"

	"github.com/fixitquick/fixitquick"
)

// FeedbackCmd records a helpfulness vote or an improvement comment for a
// solution, and shows what is currently recorded.
type FeedbackCmd struct {
	ID        string `arg:"" help:"Solution ID."`
	Helpful   bool   `help:"Mark the solution as helpful." xor:"vote"`
	Unhelpful bool   `help:"Mark the solution as unhelpful." xor:"vote"`
	Comment   string `help:"Leave an improvement comment."`
}

func (c *FeedbackCmd) Run(deps *Dependencies) error {
	if _, err := deps.Catalog.SolutionByID(c.ID); err != nil {
		return fmt.Errorf("solution %q not found", c.ID)
	}

	if c.Helpful || c.Unhelpful {
		vote := fixitquick.VoteHelpful
		if c.Unhelpful {
			vote = fixitquick.VoteUnhelpful
		}
		if err := deps.Feedback.SetVote(deps.Ctx, c.ID, vote); err != nil {
			return fmt.Errorf("failed to record vote: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "Recorded %s vote for %s\n", vote, c.ID)
	}

	if c.Comment != "" {
		if err := deps.Feedback.SetComment(deps.Ctx, c.ID, c.Comment); err != nil {
			return fmt.Errorf("failed to record comment: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "Recorded comment for %s\n", c.ID)
	}

	if !c.Helpful && !c.Unhelpful && c.Comment == "" {
		vote := deps.Feedback.Vote(deps.Ctx, c.ID)
		if vote == fixitquick.VoteNone {
			fmt.Fprintln(deps.Stdout, "No vote recorded.")
		} else {
			fmt.Fprintf(deps.Stdout, "Vote: %s\n", vote)
		}
		if comment := deps.Feedback.Comment(deps.Ctx, c.ID); comment != "" {
			fmt.Fprintf(deps.Stdout, "Comment: %s\n", comment)
		}
	}

	return nil
}
