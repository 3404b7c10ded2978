package models

// Category is a human label used both for display and as a search filter
// substring on the post listing.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100"`
}

// CategoryRequest defines the request body for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
