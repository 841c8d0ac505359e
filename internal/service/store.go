package service

import (
	"context"

	"github.com/ideaboard/ideaboard-go/internal/model"
)

// Store interfaces consumed by the services. internal/repository provides
// the SQL implementations; tests substitute in-memory fakes.

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// IdeaStore persists ideas and computes their viewer-relative responses.
type IdeaStore interface {
	Insert(ctx context.Context, idea *model.Idea) error
	Get(ctx context.Context, id int64) (*model.Idea, error)
	GetResponse(ctx context.Context, id int64, viewerID *int64) (*model.IdeaResponse, error)
	ListResponses(ctx context.Context, viewerID *int64) ([]model.IdeaResponse, error)
	Update(ctx context.Context, idea *model.Idea) error
	Delete(ctx context.Context, id int64) error
}

// CommentStore persists comments.
type CommentStore interface {
	Insert(ctx context.Context, comment *model.Comment) error
	Get(ctx context.Context, id int64) (*model.CommentResponse, error)
	ListBySection(ctx context.Context, ideaID int64, section string) ([]model.CommentResponse, error)
}

// UpvoteStore persists upvote rows. Insert must be atomic with respect to
// the unique (idea, user) pair so concurrent duplicates lose cleanly.
type UpvoteStore interface {
	Insert(ctx context.Context, ideaID, userID int64) error
	Delete(ctx context.Context, ideaID, userID int64) error
	CountByIdea(ctx context.Context, ideaID int64) (int, error)
	Exists(ctx context.Context, ideaID, userID int64) (bool, error)
}
