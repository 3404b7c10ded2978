package models

// Status is the publish-state lookup table referenced by posts.
type Status struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Status string `json:"status" gorm:"size:20;uniqueIndex"`
}

// Seeded status labels.
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
)
