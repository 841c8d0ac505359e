package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ideaboard/ideaboard-go/internal/model"
	"github.com/ideaboard/ideaboard-go/internal/repository"
)

// CommentService handles the append-only comment threads attached to idea
// sections.
type CommentService struct {
	comments CommentStore
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments CommentStore) *CommentService {
	return &CommentService{comments: comments}
}

// List returns the comments of one idea section in insertion order, author
// usernames joined in.
func (s *CommentService) List(ctx context.Context, ideaID int64, section string) ([]model.CommentResponse, error) {
	comments, err := s.comments.ListBySection(ctx, ideaID, section)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.CommentResponse{}
	}
	return comments, nil
}

// Create validates and stores a new comment by the acting user. The section
// must be one of the five idea field names; storage treats it as opaque
// text, so the whitelist lives here.
func (s *CommentService) Create(ctx context.Context, ideaID, authorID int64, req model.CreateCommentRequest) (*model.CommentResponse, error) {
	if !model.ValidSection(req.Section) {
		return nil, &ValidationError{
			Field:   "section",
			Message: "section must be one of " + strings.Join(model.Sections, ", "),
		}
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, requiredField("content")
	}

	comment := &model.Comment{
		IdeaID:   ideaID,
		Section:  req.Section,
		Content:  req.Content,
		AuthorID: &authorID,
	}

	if err := s.comments.Insert(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}

	return s.comments.Get(ctx, comment.ID)
}
