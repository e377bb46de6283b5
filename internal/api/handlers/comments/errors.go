package comments

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Gramview/internal/api/handlers"
	"Gramview/internal/core/posts"
	"Gramview/internal/instagram"
)

// handleServiceError maps service-layer errors to HTTP responses.
// Local lookup misses and remote media-gone both surface as 404; every other
// Instagram failure (auth and permission errors included) is reported as an
// upstream bad gateway rather than masked as a client error.
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

		// Don't leak internal error details to clients
		log.Printf("Unexpected error in comments handler: %v", err)
		handlers.WriteDetail(w, http.StatusInternalServerError, "An internal error occurred")
	}
}

// postIDParam parses the {postID} URL parameter
func postIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
}
