package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ideaboard/ideaboard-go/internal/model"
	"github.com/ideaboard/ideaboard-go/internal/repository"
)

var (
	ErrIdeaNotFound = errors.New("idea not found")
	ErrForbidden    = errors.New("not allowed to modify this idea")
)

// IdeaService composes ideas with their derived fields and applies the
// ownership guard to mutations.
type IdeaService struct {
	ideas IdeaStore
	guard Guard
}

// NewIdeaService creates a new IdeaService.
func NewIdeaService(ideas IdeaStore, guard Guard) *IdeaService {
	return &IdeaService{ideas: ideas, guard: guard}
}

// List returns all ideas with upvote count and the viewer's upvoted flag.
// viewerID is nil for anonymous viewers, whose hasUpvoted is always false.
// Order is ascending id, i.e. insertion order.
func (s *IdeaService) List(ctx context.Context, viewerID *int64) ([]model.IdeaResponse, error) {
	ideas, err := s.ideas.ListResponses(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if ideas == nil {
		ideas = []model.IdeaResponse{}
	}
	return ideas, nil
}

// Get returns one idea with derived fields relative to the optional viewer.
func (s *IdeaService) Get(ctx context.Context, id int64, viewerID *int64) (*model.IdeaResponse, error) {
	resp, err := s.ideas.GetResponse(ctx, id, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}
	return resp, nil
}

// Create validates and stores a new idea with the acting user as owner.
func (s *IdeaService) Create(ctx context.Context, authorID int64, req model.CreateIdeaRequest) (*model.IdeaResponse, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"what", req.What},
		{"who", req.Who},
		{"features", req.Features},
		{"doneCriteria", req.DoneCriteria},
		{"inspiration", req.Inspiration},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, requiredField(f.name)
		}
	}

	idea := &model.Idea{
		What:         req.What,
		Who:          req.Who,
		Features:     req.Features,
		DoneCriteria: req.DoneCriteria,
		Inspiration:  req.Inspiration,
		AuthorID:     &authorID,
	}

	if err := s.ideas.Insert(ctx, idea); err != nil {
		return nil, err
	}

	return s.Get(ctx, idea.ID, &authorID)
}

// Update applies a partial update to an idea the actor may mutate. Provided
// fields must be non-empty; absent fields are left unchanged.
func (s *IdeaService) Update(ctx context.Context, actorID, id int64, req model.UpdateIdeaRequest) (*model.IdeaResponse, error) {
	idea, err := s.ideas.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}

	if !s.guard.CanMutate(actorID, idea.AuthorID) {
		return nil, ErrForbidden
	}

	updates := []struct {
		name  string
		value *string
		dest  *string
	}{
		{"what", req.What, &idea.What},
		{"who", req.Who, &idea.Who},
		{"features", req.Features, &idea.Features},
		{"doneCriteria", req.DoneCriteria, &idea.DoneCriteria},
		{"inspiration", req.Inspiration, &idea.Inspiration},
	}
	for _, u := range updates {
		if u.value == nil {
			continue
		}
		if strings.TrimSpace(*u.value) == "" {
			return nil, requiredField(u.name)
		}
		*u.dest = *u.value
	}

	if err := s.ideas.Update(ctx, idea); err != nil {
		return nil, err
	}

	return s.Get(ctx, id, &actorID)
}

// Delete removes an idea the actor may mutate. Deleting a missing idea is
// ErrIdeaNotFound both times, never an idempotent success.
func (s *IdeaService) Delete(ctx context.Context, actorID, id int64) error {
	idea, err := s.ideas.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return ErrIdeaNotFound
		}
		return err
	}

	if !s.guard.CanMutate(actorID, idea.AuthorID) {
		return ErrForbidden
	}

	if err := s.ideas.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return ErrIdeaNotFound
		}
		return err
	}
	return nil
}
