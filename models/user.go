package models

import "time"

// UserType identifies the role a user account holds inside an organization.
// Role names double as the default permission-group names seeded at startup.
type UserType string

const (
	// UserTypeMasterAdmin is the platform operator role with every permission.
	UserTypeMasterAdmin UserType = "MASTER_ADMIN"
	// UserTypeOwner is a VSRE owner: the top of an organization hierarchy.
	UserTypeOwner UserType = "VSRE_OWNER"
	// UserTypeManager is a VSRE manager reporting to an owner.
	UserTypeManager UserType = "VSRE_MANAGER"
	// UserTypeLineManager is a reporting manager placed under a VSRE manager.
	UserTypeLineManager UserType = "LINE_MANAGER"
	// UserTypeStaff is operational staff assigned to venues and services.
	UserTypeStaff UserType = "VSRE_STAFF"
	// UserTypeCustomer is an end customer booking venues and services.
	UserTypeCustomer UserType = "CUSTOMER"
)

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeMasterAdmin, UserTypeOwner, UserTypeManager,
		UserTypeLineManager, UserTypeStaff, UserTypeCustomer:
		return true
	}
	return false
}

// IsManagerial reports whether t is one of the manager roles. Managerial and
// staff roles are the ones tracked by attendance and payroll.
func (t UserType) IsManagerial() bool {
	return t == UserTypeManager || t == UserTypeLineManager
}

// Employment categories accepted for staff and manager accounts.
const (
	CategoryRegular  = "Regular"
	CategoryFulltime = "Fulltime"
	CategoryParttime = "Parttime"
	CategoryVirtual  = "Virtual"
	CategoryPPO      = "PPO"
	CategoryVendor   = "Vendor"
)

// Gender codes stored on a user profile.
const (
	GenderMale        = "M"
	GenderFemale      = "F"
	GenderOther       = "O"
	GenderUndisclosed = "N"
)

// User is the account entity used for authentication, authorization and all
// ownership relations in the system. Credential material never leaves the
// trusted boundary: PasswordHash is excluded from JSON.
type User struct {
	// UserID is the internal unique identifier assigned by the database.
	UserID int64 `json:"id"`

	// EmployeeID is the human-readable identifier assigned to staff and
	// manager accounts (format PREFIX-YEAR-OWNER-SEQ). Empty for other roles.
	EmployeeID string `json:"employee_id,omitempty"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// MobileNumber is the unique secondary login identifier.
	MobileNumber string `json:"mobile_number"`

	// EmergencyContact is an optional out-of-band phone number.
	EmergencyContact string `json:"emergency_contact,omitempty"`

	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`

	// Gender is one of the Gender* codes.
	Gender string `json:"gender"`

	// Category is the employment category for staff and managers.
	Category string `json:"category,omitempty"`

	// UserType is the account role; it selects the seeded permission group.
	UserType UserType `json:"user_type"`

	Address string `json:"address"`

	// City is the base/preferred location, used for entity filtering.
	City string `json:"city"`

	// IsActive gates login. Owner registrations start inactive and wait for
	// master-admin approval.
	IsActive bool `json:"is_active"`

	// IsStaff marks accounts with access to administrative surfaces.
	IsStaff bool `json:"is_staff,omitempty"`

	DateJoined     *time.Time `json:"date_joined,omitempty"`
	LastWorkingDay *time.Time `json:"last_working_day,omitempty"`

	// OrderTypes and Skills are free-form capability lists used when
	// assigning staff to events.
	OrderTypes StringList `json:"order_types,omitempty"`
	Skills     StringList `json:"skills,omitempty"`

	// TargetPercent is the utilization target for staff accounts.
	TargetPercent float64 `json:"target_percent,omitempty"`

	// QCRequired marks staff whose work output needs quality review.
	QCRequired bool `json:"qc_required,omitempty"`

	// CreatedBy is the user ID of the account that registered this one
	// (zero when self-registered).
	CreatedBy int64 `json:"created_by,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never serialized.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns the display name used in logs and reports.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName + " (" + string(u.UserType) + ")"
}

// TableName returns the name of the database table associated with the User
// model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login request payload. Identifier accepts either the
// email address or the mobile number of the account.
type Credentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Registration is the payload accepted by the registration endpoints.
// Password travels only inbound and is hashed before storage.
type Registration struct {
	Email            string     `json:"email"`
	MobileNumber     string     `json:"mobile_number"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	FirstName        string     `json:"first_name"`
	MiddleName       string     `json:"middle_name,omitempty"`
	LastName         string     `json:"last_name"`
	Gender           string     `json:"gender"`
	Category         string     `json:"category,omitempty"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	OrderTypes       StringList `json:"order_types,omitempty"`
	Skills           StringList `json:"skills,omitempty"`
	Password         string     `json:"password"`
	ConfirmPassword  string     `json:"confirm_password"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave the
// stored value untouched.
type ProfileUpdate struct {
	FirstName        *string     `json:"first_name,omitempty"`
	MiddleName       *string     `json:"middle_name,omitempty"`
	LastName         *string     `json:"last_name,omitempty"`
	EmergencyContact *string     `json:"emergency_contact,omitempty"`
	Gender           *string     `json:"gender,omitempty"`
	Address          *string     `json:"address,omitempty"`
	City             *string     `json:"city,omitempty"`
	OrderTypes       *StringList `json:"order_types,omitempty"`
	Skills           *StringList `json:"skills,omitempty"`
}

// PasswordChange is the change-password request payload.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UserFilter narrows account listings. Zero values mean "no constraint".
type UserFilter struct {
	// Search matches name, email, mobile number and employee ID
	// case-insensitively.
	Search string

	// OwnerID restricts the listing to accounts inside one owner's
	// organization. ParentID restricts it to direct reports.
	OwnerID  int64
	ParentID int64

	Types      []UserType
	City       string
	ActiveOnly bool
}
