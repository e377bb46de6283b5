package comments

import (
	"encoding/json"
	"log"
	"net/http"

	"Gramview/internal/api/handlers"
	"Gramview/internal/core/comments"
)

// ListCommentsHandler handles requests for a post's recorded comments
type ListCommentsHandler struct {
	service comments.Service
}

// NewListCommentsHandler creates a new handler for listing comments
func NewListCommentsHandler(service comments.Service) *ListCommentsHandler {
	return &ListCommentsHandler{
		service: service,
	}
}

// HandleList handles comment listing requests
// GET /api/posts/{postID}/comments/
//
// Responses:
//
//	200 — the post's comments, newest first
//	404 — post missing locally
func (h *ListCommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDParam(r)
	if err != nil {
		handlers.WriteDetail(w, http.StatusNotFound, "post not found")
		return
	}

	result, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result == nil {
		result = []*comments.Comment{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
