package domain

import "time"

// Tag labels posts. Title is unique; Slug is derived from the title when the
// client does not provide one.
type Tag struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
