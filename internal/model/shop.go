package model

import "time"

// Shop is a roaster or store where beans were bought.
type Shop struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	URL       *string   `json:"url"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShopInput is the validated write model for a shop.
type ShopInput struct {
	Name    string
	Address *string
	URL     *string
	Notes   *string
}
