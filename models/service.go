package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable offering tied to a venue (photography, catering,
// decoration and the like).
type Service struct {
	ID int64 `json:"id"`

	// VenueID is the venue the service is offered at.
	VenueID int64 `json:"venue_id"`

	// OwnerID is denormalized from the venue for cheap scoping of listings.
	OwnerID int64 `json:"owner_id"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Category is a free-form grouping label used by catalog filters.
	Category string `json:"category,omitempty"`

	Price decimal.Decimal `json:"price"`

	// DurationMinutes is the slot length a single booking occupies.
	DurationMinutes int `json:"duration_minutes"`

	// StaffIDs is the set of staff accounts able to deliver the service.
	StaffIDs Int64List `json:"staff_ids,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// Service model.
func (s Service) TableName() string {
	return "services"
}

// ServiceFilter narrows service listings. Zero values mean "no constraint".
type ServiceFilter struct {
	// Search matches name and description case-insensitively.
	Search string

	VenueID  int64
	OwnerID  int64
	Category string

	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}
