package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ideaboard/ideaboard-go/internal/model"
)

var ErrIdeaNotFound = errors.New("idea not found")

// IdeaRepository handles idea persistence, including the viewer-relative
// aggregation (author username, upvote count, hasUpvoted).
type IdeaRepository struct {
	db *sql.DB
}

// NewIdeaRepository creates a new IdeaRepository.
func NewIdeaRepository(db *sql.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// ideaResponseQuery composes an idea with its derived fields in one
// statement, so listing stays a single round trip instead of a count query
// per idea. The viewer parameter may be NULL, in which case the upvoted
// subquery matches nothing and hasUpvoted is false.
const ideaResponseQuery = `
	SELECT i.id, i.what, i.who, i.features, i.done_criteria, i.inspiration,
	       i.author_user_id, u.username, i.created_at,
	       (SELECT COUNT(*) FROM upvotes v WHERE v.idea_id = i.id),
	       (SELECT COUNT(*) FROM upvotes v WHERE v.idea_id = i.id AND v.user_id = ?)
	FROM ideas i
	LEFT JOIN users u ON u.id = i.author_user_id`

// Insert stores a new idea and sets the generated ID and creation time on
// the struct.
func (r *IdeaRepository) Insert(ctx context.Context, idea *model.Idea) error {
	idea.CreatedAt = time.Now().UTC()

	query := `INSERT INTO ideas (what, who, features, done_criteria, inspiration, author_user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		idea.What, idea.Who, idea.Features, idea.DoneCriteria, idea.Inspiration,
		idea.AuthorID, idea.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	idea.ID = id
	return nil
}

// Get retrieves a raw idea row without derived fields. Used where only
// existence and ownership matter.
func (r *IdeaRepository) Get(ctx context.Context, id int64) (*model.Idea, error) {
	query := `SELECT id, what, who, features, done_criteria, inspiration, author_user_id, created_at
		FROM ideas WHERE id = ?`

	idea := &model.Idea{}
	var authorID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&idea.ID, &idea.What, &idea.Who, &idea.Features, &idea.DoneCriteria,
		&idea.Inspiration, &authorID, &idea.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}

	if authorID.Valid {
		idea.AuthorID = &authorID.Int64
	}
	return idea, nil
}

// GetResponse retrieves one idea composed with derived fields relative to
// the optional viewer.
func (r *IdeaRepository) GetResponse(ctx context.Context, id int64, viewerID *int64) (*model.IdeaResponse, error) {
	row := r.db.QueryRowContext(ctx, ideaResponseQuery+` WHERE i.id = ?`, viewerID, id)

	resp, err := scanIdeaResponse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}
	return resp, nil
}

// ListResponses retrieves all ideas with derived fields relative to the
// optional viewer, ordered by ascending id (insertion order).
func (r *IdeaRepository) ListResponses(ctx context.Context, viewerID *int64) ([]model.IdeaResponse, error) {
	rows, err := r.db.QueryContext(ctx, ideaResponseQuery+` ORDER BY i.id`, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ideas := []model.IdeaResponse{}
	for rows.Next() {
		resp, err := scanIdeaResponse(rows)
		if err != nil {
			return nil, err
		}
		ideas = append(ideas, *resp)
	}
	return ideas, rows.Err()
}

// Update rewrites the five text fields of an idea. RowsAffected is not
// consulted: MySQL reports zero affected rows for value-identical updates,
// so callers check existence beforehand.
func (r *IdeaRepository) Update(ctx context.Context, idea *model.Idea) error {
	query := `UPDATE ideas SET what = ?, who = ?, features = ?, done_criteria = ?, inspiration = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		idea.What, idea.Who, idea.Features, idea.DoneCriteria, idea.Inspiration, idea.ID,
	)
	return err
}

// Delete removes an idea; upvotes and comments cascade. Deleting a missing
// idea returns ErrIdeaNotFound rather than succeeding silently.
func (r *IdeaRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ideas WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrIdeaNotFound
	}
	return nil
}

// Count returns the total number of ideas.
func (r *IdeaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ideas`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdeaResponse(row rowScanner) (*model.IdeaResponse, error) {
	resp := &model.IdeaResponse{}
	var authorID sql.NullInt64
	var username sql.NullString
	var viewerUpvoted int

	err := row.Scan(
		&resp.ID, &resp.What, &resp.Who, &resp.Features, &resp.DoneCriteria,
		&resp.Inspiration, &authorID, &username, &resp.CreatedAt,
		&resp.UpvoteCount, &viewerUpvoted,
	)
	if err != nil {
		return nil, err
	}

	if authorID.Valid {
		resp.AuthorID = &authorID.Int64
	}
	if username.Valid {
		resp.AuthorUsername = &username.String
	}
	resp.HasUpvoted = viewerUpvoted > 0
	return resp, nil
}
