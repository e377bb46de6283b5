package routes

import (
	"github.com/go-chi/chi/v5"

	"Gramview/internal/api/handlers/post"
	"Gramview/internal/core/posts"
)

// RegisterPostRoutes registers the post read endpoints on the router.
func RegisterPostRoutes(r chi.Router, postRepo posts.Repository) {
	listHandler := post.NewListPostsHandler(postRepo)

	r.Get("/api/posts/", listHandler.HandleList)
}
