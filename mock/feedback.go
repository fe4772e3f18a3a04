package mock

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

var _ fixitquick.FeedbackService = (*FeedbackService)(nil)

// FeedbackService is a mock implementation of fixitquick.FeedbackService.
type FeedbackService struct {
	SetVoteFn    func(ctx context.Context, solutionID string, vote fixitquick.Vote) error
	VoteFn       func(ctx context.Context, solutionID string) fixitquick.Vote
	SetCommentFn func(ctx context.Context, solutionID, comment string) error
	CommentFn    func(ctx context.Context, solutionID string) string
}

func (s *FeedbackService) SetVote(ctx context.Context, solutionID string, vote fixitquick.Vote) error {
	return s.SetVoteFn(ctx, solutionID, vote)
}

func (s *FeedbackService) Vote(ctx context.Context, solutionID string) fixitquick.Vote {
	return s.VoteFn(ctx, solutionID)
}

func (s *FeedbackService) SetComment(ctx context.Context, solutionID, comment string) error {
	return s.SetCommentFn(ctx, solutionID, comment)
}

func (s *FeedbackService) Comment(ctx context.Context, solutionID string) string {
	return s.CommentFn(ctx, solutionID)
}
