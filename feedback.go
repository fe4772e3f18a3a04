package fixitquick

import "context"

// Vote is a reader's verdict on a solution.
type Vote string

// Vote values. VoteNone means no feedback has been left.
const (
	VoteNone      Vote = ""
	VoteHelpful   Vote = "helpful"
	VoteUnhelpful Vote = "unhelpful"
)

// FeedbackService records per-solution helpfulness votes and free-text
// improvement comments.
type FeedbackService interface {
	// SetVote records a vote for a solution, replacing any earlier one.
	// Returns EINVALID for votes other than helpful or unhelpful.
	SetVote(ctx context.Context, solutionID string, vote Vote) error

	// Vote returns the recorded vote for a solution, or VoteNone.
	Vote(ctx context.Context, solutionID string) Vote

	// SetComment records an improvement comment for a solution,
	// replacing any earlier one. Returns EINVALID for empty comments.
	SetComment(ctx context.Context, solutionID, comment string) error

	// Comment returns the recorded comment for a solution, or "".
	Comment(ctx context.Context, solutionID string) string
}
