package model

import "time"

// Filter is a brewing filter.
type Filter struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Type       *FilterType `json:"type"`
	Notes      *string     `json:"notes"`
	URL        *string     `json:"url"`
	ImagePath  *string     `json:"imagePath"`
	UsageCount int         `json:"usageCount"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// FilterInput is the validated write model for a filter.
type FilterInput struct {
	Name      string
	Type      *FilterType
	Notes     *string
	URL       *string
	ImagePath *string
}
