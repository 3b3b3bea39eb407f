package model

import "time"

// Tasting is a single brew record. Its references drive the usage counts of
// beans, drippers and filters.
type Tasting struct {
	ID        int64     `json:"id"`
	BeanID    *int64    `json:"beanId"`
	DripperID *int64    `json:"dripperId"`
	FilterID  *int64    `json:"filterId"`
	Notes     *string   `json:"notes"`
	ImagePath *string   `json:"imagePath"`
	CreatedAt time.Time `json:"createdAt"`

	// Joined fields (not always populated).
	BeanName    string `json:"beanName,omitempty"`
	DripperName string `json:"dripperName,omitempty"`
	FilterName  string `json:"filterName,omitempty"`
}

// TastingInput is the validated write model for a tasting.
type TastingInput struct {
	BeanID    *int64
	DripperID *int64
	FilterID  *int64
	Notes     *string
	ImagePath *string
}
