package comments

import (
	"context"

	"Gramview/internal/instagram"
)

// Repository defines the data access interface for comments.
// Comments are insert-only: they are written exactly once, after Instagram
// confirms the publish, and never updated.
type Repository interface {
	// Create inserts a new comment and returns it with the assigned ID
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	// ListByPost retrieves all comments for a post, newest first
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// Service orchestrates comment creation across the local database and the
// Instagram Graph API.
type Service interface {
	// CreateComment publishes a comment on the post's Instagram media and
	// persists a local record on confirmed success.
	// Returns posts.ErrPostNotFound if the post doesn't exist locally;
	// instagram client errors propagate unchanged.
	CreateComment(ctx context.Context, postID int64, text string) (*Comment, error)

	// ListComments retrieves the locally recorded comments for a post.
	// Returns posts.ErrPostNotFound if the post doesn't exist locally.
	ListComments(ctx context.Context, postID int64) ([]*Comment, error)

	// GetPostMedia fetches live metadata for the post's Instagram media.
	// Same error contract as CreateComment.
	GetPostMedia(ctx context.Context, postID int64) (*instagram.Media, error)
}
