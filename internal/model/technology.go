package model

import "time"

// Technology is a single entry in the skills/stack section of the site.
type Technology struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Category  string    `json:"category"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TechnologyPatch holds the updatable fields of a Technology. nil fields are
// left unchanged.
type TechnologyPatch struct {
	Name      *string `json:"name"`
	Icon      *string `json:"icon"`
	Category  *string `json:"category"`
	SortOrder *int    `json:"sort_order"`
}
