package model

import "time"

// Feedback is a visitor testimonial. Only entries with Featured set and
// Disabled unset appear in the public feed.
type Feedback struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Featured  bool      `json:"featured"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedbackStats holds aggregate counts for the admin dashboard.
type FeedbackStats struct {
	Total    int64 `json:"total"`
	Featured int64 `json:"featured"`
	Disabled int64 `json:"disabled"`
}
