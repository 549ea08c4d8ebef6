package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Working-time constants used to convert between salary types when computing
// a period amount.
const (
	WorkingHoursPerDay      = 8
	WorkingDaysPerWeek      = 6
	WorkingDaysPerFortnight = 12
	WorkingDaysPerMonth     = 30
)

// Salary types describing the unit BaseAmount is quoted in.
const (
	SalaryHourly      = "HOURLY"
	SalaryDaily       = "DAILY"
	SalaryWeekly      = "WEEKLY"
	SalaryFortnightly = "FORTNIGHTLY"
	SalaryMonthly     = "MONTHLY"
)

// ValidSalaryType reports whether t is a known salary type.
func ValidSalaryType(t string) bool {
	switch t {
	case SalaryHourly, SalaryDaily, SalaryWeekly, SalaryFortnightly, SalaryMonthly:
		return true
	}
	return false
}

// Payment lifecycle states for payroll disbursements.
const (
	PaymentPending   = "PENDING"
	PaymentSuccess   = "SUCCESS"
	PaymentFailed    = "FAILED"
	PaymentCancelled = "CANCELLED"
)

// ValidPaymentStatus reports whether status is a known payment state.
func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentSuccess, PaymentFailed, PaymentCancelled:
		return true
	}
	return false
}

// SalaryStructure is the compensation definition attached to a staff or
// manager account. At most one active structure exists per user.
type SalaryStructure struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	// SalaryType is one of the Salary* constants and fixes the unit of
	// BaseAmount (per hour, day, week, fortnight or month).
	SalaryType string `json:"salary_type"`

	// BaseAmount is the gross pay per SalaryType unit.
	BaseAmount decimal.Decimal `json:"base_amount"`

	// AdvanceAmount is the outstanding advance deducted from payouts.
	AdvanceAmount decimal.Decimal `json:"advance_amount"`

	EffectiveFrom time.Time `json:"effective_from"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// SalaryStructure model.
func (s SalaryStructure) TableName() string {
	return "salary_structures"
}

// DailyRate converts BaseAmount to a per-day figure using the working-time
// constants. Unknown salary types rate as zero.
func (s SalaryStructure) DailyRate() decimal.Decimal {
	switch s.SalaryType {
	case SalaryHourly:
		return s.BaseAmount.Mul(decimal.NewFromInt(WorkingHoursPerDay))
	case SalaryDaily:
		return s.BaseAmount
	case SalaryWeekly:
		return s.BaseAmount.Div(decimal.NewFromInt(WorkingDaysPerWeek))
	case SalaryFortnightly:
		return s.BaseAmount.Div(decimal.NewFromInt(WorkingDaysPerFortnight))
	case SalaryMonthly:
		return s.BaseAmount.Div(decimal.NewFromInt(WorkingDaysPerMonth))
	}
	return decimal.Zero
}

// PayrollPayment is one disbursement from an owner to a staff or manager
// account for a salary month, computed from the attendance summary and the
// salary structure in force.
type PayrollPayment struct {
	ID int64 `json:"id"`

	// OwnerID is the paying owner account.
	OwnerID int64 `json:"owner_id"`

	// UserID is the receiving staff or manager account.
	UserID int64 `json:"user_id"`

	// SalaryMonth is the first day of the month the payment covers.
	SalaryMonth time.Time `json:"salary_month"`

	// PayableDays is copied from the attendance summary the amount was
	// computed from.
	PayableDays float64 `json:"payable_days"`

	Amount decimal.Decimal `json:"amount"`

	// Status is one of the Payment* constants.
	Status string `json:"status"`

	// PaidAt is set when the payment reaches PaymentSuccess.
	PaidAt *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// PayrollPayment model.
func (p PayrollPayment) TableName() string {
	return "payroll_payments"
}

// PaymentFilter narrows payment listings. Zero values mean "no constraint".
type PaymentFilter struct {
	OwnerID int64
	UserID  int64
	Status  string

	// Month bounds the listing to one salary month when non-zero.
	Month time.Time
}
