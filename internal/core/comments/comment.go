package comments

import "time"

// Comment represents a comment that was successfully published to Instagram.
// A row only exists once the Graph API has confirmed the publish; there are
// no draft or pending states.
type Comment struct {
	ID                 int64     `json:"id"`
	PostID             int64     `json:"post"`
	InstagramCommentID string    `json:"instagram_comment_id"` // assigned by the Graph API
	Text               string    `json:"text"`
	CreatedAt          time.Time `json:"created_at"`
}
