package model

import "time"

// Dripper is a pour-over brewer.
type Dripper struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Manufacturer *string      `json:"manufacturer"`
	Size         *DripperSize `json:"size"`
	Notes        *string      `json:"notes"`
	URL          *string      `json:"url"`
	ImagePath    *string      `json:"imagePath"`
	UsageCount   int          `json:"usageCount"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// DripperInput is the validated write model for a dripper.
type DripperInput struct {
	Name         string
	Manufacturer *string
	Size         *DripperSize
	Notes        *string
	URL          *string
	ImagePath    *string
}
