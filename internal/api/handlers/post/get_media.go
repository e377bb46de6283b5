package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Gramview/internal/api/handlers"
	"Gramview/internal/core/comments"
	"Gramview/internal/core/posts"
	"Gramview/internal/instagram"
)

// GetMediaHandler serves live Instagram metadata for a local post
type GetMediaHandler struct {
	service comments.Service
}

// NewGetMediaHandler creates a new handler for fetching post media metadata
func NewGetMediaHandler(service comments.Service) *GetMediaHandler {
	return &GetMediaHandler{
		service: service,
	}
}

// HandleGetMedia handles media metadata requests
// GET /api/posts/{postID}/media/
//
// Responses:
//
//	200 — { "id": ..., "caption": ..., "media_type": ... }
//	404 — post missing locally, or media deleted from Instagram
//	502 — any other Instagram API failure
func (h *GetMediaHandler) HandleGetMedia(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		handlers.WriteDetail(w, http.StatusNotFound, "post not found")
		return
	}

	media, err := h.service.GetPostMedia(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(media); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// handleServiceError maps service-layer errors to HTTP responses.
// Same mapping as the comments handlers: not-found stays 404, everything
// else from Instagram is an upstream failure.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsNotFound(err):
		handlers.WriteDetail(w, http.StatusNotFound, err.Error())

	case instagram.IsMediaNotFound(err):
		handlers.WriteDetail(w, http.StatusNotFound, err.Error())

	default:
		if apiErr, ok := instagram.AsAPIError(err); ok {
			handlers.WriteDetail(w, http.StatusBadGateway, "Instagram API error: "+apiErr.Message)
			return
		}

		log.Printf("Unexpected error in post handler: %v", err)
		handlers.WriteDetail(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
