package comments

import (
	"context"
	"fmt"
	"time"

	"Gramview/internal/core/posts"
	"Gramview/internal/instagram"
)

type commentService struct {
	postRepo    posts.Repository
	commentRepo Repository
	client      instagram.Client
}

// NewCommentService creates a new comment service
func NewCommentService(postRepo posts.Repository, commentRepo Repository, client instagram.Client) Service {
	return &commentService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		client:      client,
	}
}

// CreateComment publishes a comment on the post's Instagram media and
// persists a local record.
//
// Sequence:
//  1. Resolve the local post — posts.ErrPostNotFound if absent, and no
//     remote call is made.
//  2. Publish via the Graph API client. Client errors propagate unchanged
//     so the boundary can map them; nothing is written locally.
//  3. Persist the comment with the Instagram-assigned comment ID.
//
// A local write failure after a successful publish leaves the remote comment
// without a durable mirror; there is no compensation for that window.
func (s *commentService) CreateComment(ctx context.Context, postID int64, text string) (*Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.PublishComment(ctx, post.InstagramID, text)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:             post.ID,
		InstagramCommentID: resp.ID,
		Text:               text,
		CreatedAt:          time.Now().UTC(),
	}

	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to persist comment for post %d: %w", post.ID, err)
	}

	return created, nil
}

// ListComments retrieves the locally recorded comments for a post.
func (s *commentService) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByPost(ctx, postID)
}

// GetPostMedia fetches live metadata for the post's Instagram media.
func (s *commentService) GetPostMedia(ctx context.Context, postID int64) (*instagram.Media, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return s.client.GetMedia(ctx, post.InstagramID)
}
