package model

import "time"

// PageView is a single recorded visit. Appended from public traffic only.
type PageView struct {
	ID        string    `json:"id"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PageViewStats holds the aggregate counters shown on the analytics screen.
type PageViewStats struct {
	TotalViews     int64 `json:"totalViews"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
}
