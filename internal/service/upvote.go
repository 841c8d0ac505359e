package service

import (
	"context"
	"errors"

	"github.com/ideaboard/ideaboard-go/internal/model"
	"github.com/ideaboard/ideaboard-go/internal/repository"
)

var ErrAlreadyUpvoted = errors.New("already upvoted")

// UpvoteService toggles per-user idea upvotes. Add and Remove are
// intentionally asymmetric: Add rejects duplicates so the unique pair can
// never be violated, Remove tolerates absence so retries are harmless.
type UpvoteService struct {
	ideas   IdeaStore
	upvotes UpvoteStore
}

// NewUpvoteService creates a new UpvoteService.
func NewUpvoteService(ideas IdeaStore, upvotes UpvoteStore) *UpvoteService {
	return &UpvoteService{ideas: ideas, upvotes: upvotes}
}

// Add records the user's upvote and returns the recomputed count. The
// insert itself is the atomicity point: a concurrent duplicate loses with
// ErrAlreadyUpvoted from the store's unique constraint, not from a racy
// pre-check here.
func (s *UpvoteService) Add(ctx context.Context, ideaID, userID int64) (model.UpvoteResponse, error) {
	if _, err := s.ideas.Get(ctx, ideaID); err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return model.UpvoteResponse{}, ErrIdeaNotFound
		}
		return model.UpvoteResponse{}, err
	}

	if err := s.upvotes.Insert(ctx, ideaID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUpvote):
			return model.UpvoteResponse{}, ErrAlreadyUpvoted
		case errors.Is(err, repository.ErrIdeaNotFound):
			return model.UpvoteResponse{}, ErrIdeaNotFound
		default:
			return model.UpvoteResponse{}, err
		}
	}

	count, err := s.upvotes.CountByIdea(ctx, ideaID)
	if err != nil {
		return model.UpvoteResponse{}, err
	}
	return model.UpvoteResponse{ID: ideaID, UpvoteCount: count}, nil
}

// Remove deletes the user's upvote if present and returns the recomputed
// count. Removing an absent upvote is a no-op, not an error; the idea
// itself must still exist.
func (s *UpvoteService) Remove(ctx context.Context, ideaID, userID int64) (model.UpvoteResponse, error) {
	if _, err := s.ideas.Get(ctx, ideaID); err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return model.UpvoteResponse{}, ErrIdeaNotFound
		}
		return model.UpvoteResponse{}, err
	}

	if err := s.upvotes.Delete(ctx, ideaID, userID); err != nil {
		return model.UpvoteResponse{}, err
	}

	count, err := s.upvotes.CountByIdea(ctx, ideaID)
	if err != nil {
		return model.UpvoteResponse{}, err
	}
	return model.UpvoteResponse{ID: ideaID, UpvoteCount: count}, nil
}

// Count returns the upvote count for an idea. A pure aggregate: unknown
// ideas count as zero.
func (s *UpvoteService) Count(ctx context.Context, ideaID int64) (int, error) {
	return s.upvotes.CountByIdea(ctx, ideaID)
}

// Has reports whether the user currently upvotes the idea.
func (s *UpvoteService) Has(ctx context.Context, ideaID, userID int64) (bool, error) {
	return s.upvotes.Exists(ctx, ideaID, userID)
}
