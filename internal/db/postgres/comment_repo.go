package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"Gramview/internal/core/comments"
	"Gramview/internal/core/posts"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (post_id, instagram_comment_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		comment.PostID, comment.InstagramCommentID, comment.Text, comment.CreatedAt).
		Scan(&comment.ID)
	if err != nil {
		var pqErr *pq.Error
		// 23503: the referenced post was deleted between lookup and insert
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return nil, posts.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListByPost retrieves all comments for a post, newest first
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `
		SELECT id, post_id, instagram_comment_id, text, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	result := []*comments.Comment{}
	for rows.Next() {
		comment := &comments.Comment{}
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.InstagramCommentID,
			&comment.Text, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comment rows: %w", err)
	}

	return result, nil
}
