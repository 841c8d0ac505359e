package model

import "time"

// Idea represents an idea row. AuthorID is nil for legacy ideas created
// before accounts existed, or when the author's account was deleted.
type Idea struct {
	ID           int64
	What         string
	Who          string
	Features     string
	DoneCriteria string
	Inspiration  string
	AuthorID     *int64
	CreatedAt    time.Time
}

// CreateIdeaRequest carries the five idea fields for creation. All are
// required.
type CreateIdeaRequest struct {
	What         string `json:"what"`
	Who          string `json:"who"`
	Features     string `json:"features"`
	DoneCriteria string `json:"doneCriteria"`
	Inspiration  string `json:"inspiration"`
}

// UpdateIdeaRequest is a partial update: nil means "leave unchanged",
// a provided field must still be non-empty.
type UpdateIdeaRequest struct {
	What         *string `json:"what"`
	Who          *string `json:"who"`
	Features     *string `json:"features"`
	DoneCriteria *string `json:"doneCriteria"`
	Inspiration  *string `json:"inspiration"`
}

// IdeaResponse is an idea composed with viewer-dependent derived fields.
// AuthorUsername is absent for anonymous or deleted authors; HasUpvoted is
// always false for anonymous viewers.
type IdeaResponse struct {
	ID             int64     `json:"id"`
	What           string    `json:"what"`
	Who            string    `json:"who"`
	Features       string    `json:"features"`
	DoneCriteria   string    `json:"doneCriteria"`
	Inspiration    string    `json:"inspiration"`
	AuthorID       *int64    `json:"authorUserId,omitempty"`
	AuthorUsername *string   `json:"authorUsername,omitempty"`
	UpvoteCount    int       `json:"upvoteCount"`
	HasUpvoted     bool      `json:"hasUpvoted"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UpvoteResponse is the body returned by the upvote toggle endpoints.
type UpvoteResponse struct {
	ID          int64 `json:"id"`
	UpvoteCount int   `json:"upvoteCount"`
}
