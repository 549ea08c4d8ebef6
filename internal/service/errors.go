package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// Registration and credential errors.
	ErrPasswordsDoNotMatch    = errors.New("passwords do not match")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrWrongPassword          = errors.New("current password is incorrect")
	ErrAccountPendingApproval = errors.New("account pending approval by master admin")

	// Token lifecycle errors.
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrPermissionDenied is returned when the caller's role lacks the
	// permission an operation requires.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrPlanLimitReached is returned when creating a catalog entity would
	// exceed the owner's pricing plan limits.
	ErrPlanLimitReached = errors.New("pricing plan limit reached")

	// Payroll errors.
	ErrUnknownSalaryType       = errors.New("unknown salary type")
	ErrUnknownPaymentStatus    = errors.New("unknown payment status")
	ErrInvalidStatusTransition = errors.New("invalid payment status transition")
)
