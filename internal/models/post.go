package models

import "time"

// Post represents a blog article. Each post belongs to exactly one category
// and one status; updates are last-writer-wins.
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	CategoryID  uint      `json:"category_id" gorm:"index"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	StatusID    uint      `json:"status_id" gorm:"index"`
	Date        time.Time `json:"date" gorm:"index"`
	LikesCount  int       `json:"likes_count"`
}

// PostView is the joined read shape returned by listing and single-post
// queries: the category and status foreign keys are resolved to their labels.
type PostView struct {
	ID          uint      `json:"id"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	LikesCount  int       `json:"likes_count"`
}

// PostPage is one page of search results plus pagination metadata.
// NextPage and PreviousPage are omitted from the JSON when not applicable.
type PostPage struct {
	TotalPosts   int64      `json:"totalPosts"`
	TotalPages   int        `json:"totalPages"`
	CurrentPage  int        `json:"currentPage"`
	Limit        int        `json:"limit"`
	Posts        []PostView `json:"posts"`
	NextPage     *int       `json:"nextPage,omitempty"`
	PreviousPage *int       `json:"previousPage,omitempty"`
}

// CreatePostRequest defines the multipart form fields for creating a post.
// The image itself arrives as the "imageFile" part and is uploaded to the
// storage bucket before the row is written.
type CreatePostRequest struct {
	Title       string `form:"title" validate:"required"`
	CategoryID  uint   `form:"category_id" validate:"required"`
	Description string `form:"description" validate:"required"`
	Content     string `form:"content" validate:"required"`
	StatusID    uint   `form:"status_id" validate:"required"`
}

// UpdatePostRequest defines the request body for replacing a post.
// All fields are required; the publish date is refreshed server-side.
type UpdatePostRequest struct {
	Title       string `json:"title" validate:"required"`
	Image       string `json:"image" validate:"required"`
	CategoryID  uint   `json:"category_id" validate:"required"`
	Description string `json:"description" validate:"required"`
	Content     string `json:"content" validate:"required"`
	StatusID    uint   `json:"status_id" validate:"required"`
}
