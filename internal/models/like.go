package models

import "time"

// Like represents a like on a post. Rows are durable and keyed so the
// notification feed can reference a like by its own identity. At most one
// like per (post, user).
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_likes_post_user"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_post_likes_post_user"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName keeps the original table name for likes
func (Like) TableName() string {
	return "post_likes"
}
