package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Gramview/internal/api/handlers"
	"Gramview/internal/core/posts"
)

// ListPostsHandler serves the locally imported posts
type ListPostsHandler struct {
	repo posts.Repository
}

// NewListPostsHandler creates a new handler for listing posts
func NewListPostsHandler(repo posts.Repository) *ListPostsHandler {
	return &ListPostsHandler{
		repo: repo,
	}
}

// HandleList handles post listing requests
// GET /api/posts/
//
// Responses:
//
//	200 — imported posts, newest first
func (h *ListPostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.repo.List(r.Context())
	if err != nil {
		log.Printf("Unexpected error in post handler: %v", err)
		handlers.WriteDetail(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	if result == nil {
		result = []*posts.Post{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
