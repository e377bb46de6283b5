package posts

import "errors"

var (
	// ErrPostNotFound is returned when the requested post doesn't exist locally
	ErrPostNotFound = errors.New("post not found")

	// ErrDuplicateInstagramID is returned when a post with the same Instagram
	// media ID already exists
	ErrDuplicateInstagramID = errors.New("post with this Instagram media ID already exists")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}
