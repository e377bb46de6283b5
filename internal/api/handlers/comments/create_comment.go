package comments

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"Gramview/internal/api/handlers"
	"Gramview/internal/core/comments"
)

// maxTextLength is the Instagram comment length limit in characters
const maxTextLength = 2200

// CreateCommentHandler handles comment creation requests
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{
		service: service,
	}
}

// CreateCommentInput is the request body for comment creation
type CreateCommentInput struct {
	Text string `json:"text"`
}

// HandleCreate handles comment creation requests
// POST /api/posts/{postID}/comments/
//
// Request body: { "text": "..." }
// Responses:
//
//	201 — the persisted comment
//	400 — validation errors keyed by field
//	404 — post missing locally, or media deleted from Instagram
//	502 — any other Instagram API failure
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDParam(r)
	if err != nil {
		handlers.WriteDetail(w, http.StatusNotFound, "post not found")
		return
	}

	// Bound the body size; 64KB is plenty for a 2200-character comment
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validation happens entirely here; the service is never invoked with
	// text the remote API would reject for shape reasons.
	text := strings.TrimSpace(input.Text)
	if msgs := validateText(text); len(msgs) > 0 {
		handlers.WriteValidationErrors(w, map[string][]string{"text": msgs})
		return
	}

	comment, err := h.service.CreateComment(r.Context(), postID, text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(comment); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func validateText(text string) []string {
	var msgs []string
	if text == "" {
		msgs = append(msgs, "This field may not be blank.")
	} else if utf8.RuneCountInString(text) > maxTextLength {
		msgs = append(msgs, fmt.Sprintf("Ensure this field has no more than %d characters.", maxTextLength))
	}
	return msgs
}
