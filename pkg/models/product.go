package models

import (
	"math"
	"time"
)

// Product mirrors the catalog record returned by the storefront backend.
// Prices travel the wire as decimal dollars; cart math works in cents.
type Product struct {
	ID          string    `json:"_id"`
	ModelName   string    `json:"modelName"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Condition   string    `json:"condition"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PriceCents converts the wire price into integer cents.
func (p Product) PriceCents() int {
	return int(math.Round(p.Price * 100))
}
