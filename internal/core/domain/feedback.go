package domain

import "time"

// Category classifies a feedback item.
type Category string

const (
	CategoryBug     Category = "Bug"
	CategoryFeature Category = "Feature"
	CategoryOther   Category = "Other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBug, CategoryFeature, CategoryOther:
		return true
	}
	return false
}

// Status is the moderation state of a feedback item. Items are created as
// draft; administrators move them between draft, published and reject.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusReject    Status = "reject"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusReject:
		return true
	}
	return false
}

// Author is the denormalized created_by projection on a feedback item.
type Author struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Feedback is a single feedback item as stored by the backend.
type Feedback struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Status      Status    `json:"status"`
	CreatedBy   *Author   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}
