package model

import "time"

// Sections are the five idea field names comments may attach to. The value
// is stored as opaque text; validity is checked at the service boundary.
var Sections = []string{"what", "who", "features", "doneCriteria", "inspiration"}

// ValidSection reports whether s is one of the known idea sections.
func ValidSection(s string) bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// Comment represents a comment row attached to one section of an idea.
type Comment struct {
	ID        int64
	IdeaID    int64
	Section   string
	Content   string
	AuthorID  *int64
	CreatedAt time.Time
}

// CreateCommentRequest carries a new comment's section and content.
type CreateCommentRequest struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

// CommentResponse is a comment with the author's username joined in.
type CommentResponse struct {
	ID             int64     `json:"id"`
	IdeaID         int64     `json:"ideaId"`
	Section        string    `json:"section"`
	Content        string    `json:"content"`
	AuthorID       *int64    `json:"authorUserId,omitempty"`
	AuthorUsername *string   `json:"authorUsername,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
