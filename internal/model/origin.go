package model

import "time"

// Origin is a producing country or region. Names are unique.
type Origin struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// OriginInput is the validated write model for an origin.
type OriginInput struct {
	Name  string
	Notes *string
}
