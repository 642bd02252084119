package model

import (
	"encoding/json"
	"time"
)

// ContentKind selects which singleton-like document a row belongs to.
type ContentKind string

const (
	// KindPortfolioContent is the free-form site copy (hero text, sections).
	KindPortfolioContent ContentKind = "portfolio_content"
	// KindSiteSettings is the site configuration (titles, social links).
	KindSiteSettings ContentKind = "site_settings"
)

// ContentDocument is a versioned free-form JSON document. The most recently
// updated row of a kind is treated as canonical; older rows are kept as-is.
type ContentDocument struct {
	ID        string          `json:"id"`
	Kind      ContentKind     `json:"kind"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
