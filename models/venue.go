package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venue is a bookable location owned by a VSRE owner. Venues are
// soft-deleted: a delete marks the record inactive and stamps DeletedAt so
// bookings and payment history stay intact.
type Venue struct {
	ID int64 `json:"id"`

	// OwnerID is the owner account the venue belongs to.
	OwnerID int64 `json:"owner_id"`

	// ManagerID is the manager account responsible for day-to-day
	// operations, zero when unassigned.
	ManagerID int64 `json:"manager_id,omitempty"`

	// StaffIDs is the set of staff accounts working at the venue.
	StaffIDs Int64List `json:"staff_ids,omitempty"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Pincode     string `json:"pincode,omitempty"`

	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Website      string `json:"website,omitempty"`

	// Capacity is the maximum headcount; Rooms and Floors describe the
	// physical layout.
	Capacity int `json:"capacity"`
	Rooms    int `json:"rooms,omitempty"`
	Floors   int `json:"floors,omitempty"`

	// PricePerHour is the base rental rate.
	PricePerHour decimal.Decimal `json:"price_per_hour"`

	// Amenities and Tags are free-form feature labels used by catalog
	// filters.
	Amenities StringList `json:"amenities,omitempty"`
	Tags      StringList `json:"tags,omitempty"`

	// Seating and Parking hold structured layout descriptions
	// (arrangement name to count).
	Seating CountMap `json:"seating,omitempty"`
	Parking CountMap `json:"parking,omitempty"`

	IsActive  bool       `json:"is_active"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the Venue
// model.
func (v Venue) TableName() string {
	return "venues"
}

// Deleted reports whether the venue has been soft-deleted.
func (v Venue) Deleted() bool {
	return v.DeletedAt != nil
}

// VenueFilter narrows venue listings. Zero values mean "no constraint".
type VenueFilter struct {
	// Search matches name and description case-insensitively.
	Search string

	OwnerID   int64
	ManagerID int64
	City      string

	MinCapacity int
	MaxCapacity int

	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal

	// Tags requires every listed tag to be present on the venue.
	Tags []string

	// IncludeDeleted widens the listing to soft-deleted venues. Only
	// honored for owner and admin callers.
	IncludeDeleted bool
}
