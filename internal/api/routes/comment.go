package routes

import (
	"github.com/go-chi/chi/v5"

	"Gramview/internal/api/handlers/comments"
	"Gramview/internal/api/handlers/post"
	commentsCore "Gramview/internal/core/comments"
)

// RegisterCommentRoutes registers the comment endpoints on the router.
// Paths keep their trailing slash; clients address posts by their local
// numeric ID.
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service) {
	createHandler := comments.NewCreateCommentHandler(service)
	listHandler := comments.NewListCommentsHandler(service)
	mediaHandler := post.NewGetMediaHandler(service)

	// Publish a comment on the post's Instagram media and record it locally
	r.Post("/api/posts/{postID}/comments/", createHandler.HandleCreate)

	// Read back locally recorded comments
	r.Get("/api/posts/{postID}/comments/", listHandler.HandleList)

	// Live media metadata from the Graph API
	r.Get("/api/posts/{postID}/media/", mediaHandler.HandleGetMedia)
}
