package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment modes accepted for registration advances.
const (
	PaymentModeCash   = "CASH"
	PaymentModeCard   = "CARD"
	PaymentModeUPI    = "UPI"
	PaymentModeOnline = "ONLINE"
)

// ValidPaymentMode reports whether mode is an accepted payment mode.
func ValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentModeCash, PaymentModeCard, PaymentModeUPI, PaymentModeOnline:
		return true
	}
	return false
}

// DefaultRegistrationFee is charged when a registration omits an explicit
// fee.
var DefaultRegistrationFee = decimal.NewFromInt(5000)

// Patient is a customer booking record: the person the appointment is for,
// their background details, and the payment snapshot taken at registration.
type Patient struct {
	ID int64 `json:"id"`

	// CustomerID is the account that registered the booking.
	CustomerID int64 `json:"customer_id"`

	// VenueID is the venue the appointment is booked at.
	VenueID int64 `json:"venue_id"`

	// ServiceID optionally narrows the booking to one service.
	ServiceID int64 `json:"service_id,omitempty"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`

	// MobileNumber and AlternateNumber must be exactly ten digits.
	MobileNumber    string `json:"mobile_number"`
	AlternateNumber string `json:"alternate_number,omitempty"`

	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`

	// AadharNumber is the 12-digit national identity number, optional.
	AadharNumber string `json:"aadhar_number,omitempty"`

	// PANNumber is the 10-character tax identifier, optional.
	PANNumber string `json:"pan_number,omitempty"`

	// Occupation and MedicalHistory are background fields recorded at
	// registration.
	Occupation     string `json:"occupation,omitempty"`
	MedicalHistory string `json:"medical_history,omitempty"`

	// AppointmentAt is the scheduled slot.
	AppointmentAt time.Time `json:"appointment_at"`

	// RegistrationFee defaults to DefaultRegistrationFee when omitted.
	RegistrationFee decimal.Decimal `json:"registration_fee"`

	// AdvanceAmount is the portion collected at registration. A non-zero
	// advance requires PaymentMode.
	AdvanceAmount decimal.Decimal `json:"advance_amount"`

	// PaymentMode is one of the PaymentMode* constants, empty when no
	// advance was collected.
	PaymentMode string `json:"payment_mode,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// Patient model.
func (p Patient) TableName() string {
	return "patients"
}

// TotalPayable returns the registration fee plus the advance collected.
func (p Patient) TotalPayable() decimal.Decimal {
	return p.RegistrationFee.Add(p.AdvanceAmount)
}

// PatientFilter narrows booking listings. Zero values mean "no constraint".
type PatientFilter struct {
	// Search matches first name, last name and mobile number
	// case-insensitively.
	Search string

	CustomerID int64
	VenueID    int64
	City       string

	// From and To bound AppointmentAt when non-zero.
	From time.Time
	To   time.Time
}
