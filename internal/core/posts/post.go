package posts

import "time"

// Post represents an Instagram post stored in the local database.
// Rows are written by the import pipeline; the comment service only reads
// them to resolve the Instagram media object ID.
type Post struct {
	ID          int64     `json:"id"`
	InstagramID string    `json:"instagram_id"` // Instagram media object ID, unique
	Caption     string    `json:"caption"`
	CreatedAt   time.Time `json:"created_at"`
}
