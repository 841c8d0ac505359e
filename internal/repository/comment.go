package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ideaboard/ideaboard-go/internal/model"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository handles comment persistence. Comments are append-only;
// there are no update or delete operations.
type CommentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentResponseQuery = `
	SELECT c.id, c.idea_id, c.section, c.content, c.author_user_id, u.username, c.created_at
	FROM comments c
	LEFT JOIN users u ON u.id = c.author_user_id`

// Insert stores a new comment and sets the generated ID and creation time.
// A missing idea surfaces as ErrIdeaNotFound via the foreign key.
func (r *CommentRepository) Insert(ctx context.Context, comment *model.Comment) error {
	comment.CreatedAt = time.Now().UTC()

	query := `INSERT INTO comments (idea_id, section, content, author_user_id, created_at)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		comment.IdeaID, comment.Section, comment.Content, comment.AuthorID, comment.CreatedAt,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrIdeaNotFound
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	comment.ID = id
	return nil
}

// Get retrieves one comment with the author's username joined in.
func (r *CommentRepository) Get(ctx context.Context, id int64) (*model.CommentResponse, error) {
	row := r.db.QueryRowContext(ctx, commentResponseQuery+` WHERE c.id = ?`, id)

	resp, err := scanCommentResponse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return resp, nil
}

// ListBySection retrieves the comments of one idea section in insertion
// order.
func (r *CommentRepository) ListBySection(ctx context.Context, ideaID int64, section string) ([]model.CommentResponse, error) {
	rows, err := r.db.QueryContext(ctx, commentResponseQuery+` WHERE c.idea_id = ? AND c.section = ? ORDER BY c.id`, ideaID, section)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.CommentResponse{}
	for rows.Next() {
		resp, err := scanCommentResponse(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *resp)
	}
	return comments, rows.Err()
}

func scanCommentResponse(row rowScanner) (*model.CommentResponse, error) {
	resp := &model.CommentResponse{}
	var authorID sql.NullInt64
	var username sql.NullString

	err := row.Scan(
		&resp.ID, &resp.IdeaID, &resp.Section, &resp.Content,
		&authorID, &username, &resp.CreatedAt,
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
	return resp, nil
}
