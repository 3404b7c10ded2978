package models

import "time"

// Comment represents a comment on a post. Immutable once created.
type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PostID      uint      `json:"post_id" gorm:"index"`
	UserID      uint      `json:"user_id" gorm:"index"`
	CommentText string    `json:"comment_text" gorm:"column:comment_text"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	CommentText string `json:"comment_text" validate:"required,min=1,max=500"`
}
