package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrDuplicateUpvote = errors.New("upvote already exists")

// UpvoteRepository handles upvote rows. Rows are only ever inserted or
// deleted, never updated; the (idea_id, user_id) unique constraint is the
// guarantor that a user holds at most one upvote per idea, including under
// concurrent inserts.
type UpvoteRepository struct {
	db *sql.DB
}

// NewUpvoteRepository creates a new UpvoteRepository.
func NewUpvoteRepository(db *sql.DB) *UpvoteRepository {
	return &UpvoteRepository{db: db}
}

// Insert records an upvote. This is a plain insert, not check-then-insert:
// the losing side of a concurrent duplicate gets ErrDuplicateUpvote from the
// unique constraint. A vanished idea surfaces as ErrIdeaNotFound via the
// foreign key.
func (r *UpvoteRepository) Insert(ctx context.Context, ideaID, userID int64) error {
	query := `INSERT INTO upvotes (idea_id, user_id, created_at) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, ideaID, userID, time.Now().UTC())
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateUpvote
		}
		if isForeignKeyError(err) {
			return ErrIdeaNotFound
		}
		return err
	}
	return nil
}

// Delete removes the (idea, user) upvote if present. Removing an absent
// upvote is a no-op, so the client-visible toggle is safe to retry.
func (r *UpvoteRepository) Delete(ctx context.Context, ideaID, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM upvotes WHERE idea_id = ? AND user_id = ?`, ideaID, userID)
	return err
}

// CountByIdea returns the number of upvotes for an idea. A pure aggregate:
// an unknown idea counts as zero, not an error.
func (r *UpvoteRepository) CountByIdea(ctx context.Context, ideaID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM upvotes WHERE idea_id = ?`, ideaID).Scan(&count)
	return count, err
}

// Exists reports whether the (idea, user) upvote row is present.
func (r *UpvoteRepository) Exists(ctx context.Context, ideaID, userID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM upvotes WHERE idea_id = ? AND user_id = ?`, ideaID, userID).Scan(&count)
	return count > 0, err
}
