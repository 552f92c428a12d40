package models

import "time"

// Comment is a moderatable message attached to a product. A non-nil
// ParentCommentID marks it as a reply; replies nest exactly one level in the
// UI, and the backend may return them embedded in Replies.
type Comment struct {
	ID              string    `json:"_id"`
	ProductID       string    `json:"productId"`
	AuthorID        string    `json:"userId"`
	AuthorName      string    `json:"userName"`
	Body            string    `json:"content"`
	IsAdmin         bool      `json:"isAdmin"`
	Edited          bool      `json:"edited"`
	ParentCommentID *string   `json:"parentCommentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	Replies         []Comment `json:"replies,omitempty"`
}

// IsReply reports whether the comment is attached to another comment.
func (c Comment) IsReply() bool {
	return c.ParentCommentID != nil && *c.ParentCommentID != ""
}
