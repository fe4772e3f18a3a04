package storage

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fixitquick/fixitquick"
)

// Compile-time interface verification.
var _ fixitquick.FeedbackService = (*FeedbackService)(nil)

// FeedbackService implements fixitquick.FeedbackService. Votes are stored
// as bare strings under per-solution keys outside the application prefix;
// comments live in a single map under the prefix.
type FeedbackService struct {
	kv       fixitquick.KV
	accessor *Accessor
	broker   *Broker
	logger   *slog.Logger
}

// NewFeedbackService creates a new FeedbackService. A nil logger discards
// diagnostics.
func NewFeedbackService(kv fixitquick.KV, a *Accessor, broker *Broker, logger *slog.Logger) *FeedbackService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FeedbackService{kv: kv, accessor: a, broker: broker, logger: logger}
}

// SetVote records a vote for a solution, replacing any earlier one.
func (s *FeedbackService) SetVote(ctx context.Context, solutionID string, vote fixitquick.Vote) error {
	if vote != fixitquick.VoteHelpful && vote != fixitquick.VoteUnhelpful {
		return fixitquick.Errorf(fixitquick.EINVALID, "vote must be helpful or unhelpful")
	}

	key := FeedbackKey(solutionID)
	if err := s.kv.Set(ctx, key, string(vote)); err != nil {
		s.logger.Error("feedback vote write failed", "key", key, "err", err)
		return nil
	}
	s.broker.Publish(key)
	return nil
}

// Vote returns the recorded vote for a solution, or VoteNone.
func (s *FeedbackService) Vote(ctx context.Context, solutionID string) fixitquick.Vote {
	key := FeedbackKey(solutionID)
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Error("feedback vote read failed", "key", key, "err", err)
		return fixitquick.VoteNone
	}
	if !ok {
		return fixitquick.VoteNone
	}

	switch vote := fixitquick.Vote(raw); vote {
	case fixitquick.VoteHelpful, fixitquick.VoteUnhelpful:
		return vote
	default:
		return fixitquick.VoteNone
	}
}

// SetComment records an improvement comment for a solution.
func (s *FeedbackService) SetComment(ctx context.Context, solutionID, comment string) error {
	if strings.TrimSpace(comment) == "" {
		return fixitquick.Errorf(fixitquick.EINVALID, "comment required")
	}

	mutate(ctx, s.accessor, s.broker, KeyFeedbackComments, map[string]string{},
		func(comments map[string]string) map[string]string {
			if comments == nil {
				comments = map[string]string{}
			}
			comments[solutionID] = comment
			return comments
		})
	return nil
}

// Comment returns the recorded comment for a solution, or "".
func (s *FeedbackService) Comment(ctx context.Context, solutionID string) string {
	comments := Get(ctx, s.accessor, KeyFeedbackComments, map[string]string{})
	return comments[solutionID]
}
