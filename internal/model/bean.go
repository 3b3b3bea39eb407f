package model

import "time"

// BeanMaster is a bean variety that tastings refer to.
type BeanMaster struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Origin     *string     `json:"origin"`
	RoastLevel *RoastLevel `json:"roastLevel"`
	Process    *Process    `json:"process"`
	Notes      *string     `json:"notes"`
	UsageCount int         `json:"usageCount"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// BeanMasterInput is the validated write model for a bean.
type BeanMasterInput struct {
	Name       string
	Origin     *string
	RoastLevel *RoastLevel
	Process    *Process
	Notes      *string
}
