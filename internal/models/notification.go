package models

import (
	"fmt"
	"time"
)

// Notification kinds appearing in the admin feed.
const (
	NotificationTypeComment = "comment"
	NotificationTypeLike    = "like"
)

// CommentNotificationID builds the feed identity for a comment event.
// Read markers store this exact string, so it is the only place the
// comment identity format is defined.
func CommentNotificationID(commentID uint) string {
	return fmt.Sprintf("%s-%d", NotificationTypeComment, commentID)
}

// LikeNotificationID builds the feed identity for a like event from the
// like row's own key, so the identity survives reordering between fetches.
func LikeNotificationID(likeID uint) string {
	return fmt.Sprintf("%s-%d", NotificationTypeLike, likeID)
}

// NotificationRead records that a user acknowledged one feed entry.
// Created once; duplicate creation is a no-op.
type NotificationRead struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"uniqueIndex:idx_notification_reads_user_notification"`
	NotificationType string    `json:"notification_type" gorm:"size:20"`
	NotificationID   string    `json:"notification_id" gorm:"size:64;uniqueIndex:idx_notification_reads_user_notification"`
	CreatedAt        time.Time `json:"created_at"`
}

// CommentEvent is the joined row shape for a recent comment in the feed window.
type CommentEvent struct {
	ID           uint      `json:"id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username"`
	ProfilePic   string    `json:"profile_pic"`
	ArticleTitle string    `json:"article_title"`
	PostID       uint      `json:"post_id"`
}

// LikeEvent is the joined row shape for a recent like in the feed window.
type LikeEvent struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username"`
	ProfilePic   string    `json:"profile_pic"`
	ArticleTitle string    `json:"article_title"`
	PostID       uint      `json:"post_id"`
}

// NotificationView is the uniform, ephemeral feed entry. Recomputed on
// every fetch; never persisted.
type NotificationView struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	UserName     string    `json:"userName"`
	UserAvatar   string    `json:"userAvatar"`
	ArticleTitle string    `json:"articleTitle"`
	Content      string    `json:"content,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	PostID       uint      `json:"postId"`
	IsRead       bool      `json:"isRead"`
}

// FeedPage is one page of the unread notification feed.
type FeedPage struct {
	Notifications      []NotificationView `json:"notifications"`
	TotalNotifications int                `json:"totalNotifications"`
	TotalPages         int                `json:"totalPages"`
	CurrentPage        int                `json:"currentPage"`
	Limit              int                `json:"limit"`
}

// MarkReadRequest defines the request body for acknowledging a feed entry
type MarkReadRequest struct {
	NotificationID string `json:"notificationId" validate:"required"`
}
