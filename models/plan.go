package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StarterPlanName is the pay-per-use plan seeded at startup. Owners without
// an explicit plan binding fall back to its limits.
const StarterPlanName = "Starter"

// PlanType classifies how a pricing plan charges its subscribers.
type PlanType string

const (
	PlanPayPerUse    PlanType = "PAY_PER_USE"
	PlanSubscription PlanType = "SUBSCRIPTION"
	PlanCustom       PlanType = "CUSTOM"
)

// Valid reports whether t is one of the known plan types.
func (t PlanType) Valid() bool {
	return t == PlanPayPerUse || t == PlanSubscription || t == PlanCustom
}

// PricingPlan is a billing product an owner account can subscribe to. The
// limit fields cap how many entities of each kind a subscribed owner may
// create; zero means unlimited.
type PricingPlan struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	PlanType    PlanType `json:"plan_type"`
	Description string   `json:"description,omitempty"`

	// Price is the recurring charge in the platform currency.
	Price decimal.Decimal `json:"price"`

	// BillingCycleDays is the subscription period length. Zero for
	// pay-per-use plans.
	BillingCycleDays int `json:"billing_cycle_days,omitempty"`

	MaxVenues    int `json:"max_venues"`
	MaxServices  int `json:"max_services"`
	MaxResources int `json:"max_resources"`
	MaxStaff     int `json:"max_staff"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// PricingPlan model.
func (p PricingPlan) TableName() string {
	return "pricing_plans"
}

// UserPlan binds an owner account to a pricing plan for a period. At most
// one active binding exists per owner at a time.
type UserPlan struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	PlanID int64 `json:"plan_id"`

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Plan is the joined plan definition. Populated on reads.
	Plan *PricingPlan `json:"plan,omitempty"`
}

// TableName returns the name of the database table associated with the
// UserPlan model.
func (u UserPlan) TableName() string {
	return "user_plans"
}
