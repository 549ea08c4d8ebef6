package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resource is rentable inventory attached to a venue: chairs, sound systems,
// projectors, vehicles. Quantity tracks the owned stock.
type Resource struct {
	ID int64 `json:"id"`

	// VenueID is the venue the resource is stocked at.
	VenueID int64 `json:"venue_id"`

	// OwnerID is denormalized from the venue for cheap scoping of listings.
	OwnerID int64 `json:"owner_id"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`

	// Quantity is the stocked unit count.
	Quantity int `json:"quantity"`

	// PricePerUnit is the rental rate for one unit per booking.
	PricePerUnit decimal.Decimal `json:"price_per_unit"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// Resource model.
func (r Resource) TableName() string {
	return "resources"
}

// ResourceFilter narrows resource listings. Zero values mean "no constraint".
type ResourceFilter struct {
	// Search matches name and description case-insensitively.
	Search string

	VenueID  int64
	OwnerID  int64
	Category string

	MinQuantity int

	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}
