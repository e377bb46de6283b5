package posts

import "context"

// Repository defines the data access interface for posts.
// Posts are created by the import pipeline and read by the comment service;
// they are never updated or deleted from this side.
type Repository interface {
	// GetByID retrieves a post by its local primary key
	// Returns ErrPostNotFound if no row exists
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Create inserts a new post
	// Returns ErrDuplicateInstagramID if the Instagram media ID is already taken
	Create(ctx context.Context, post *Post) (*Post, error)

	// List retrieves all posts, newest first
	List(ctx context.Context) ([]*Post, error)
}
