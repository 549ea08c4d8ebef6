package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCustomerID = errors.New("invalid customer ID")
	ErrInvalidVenueID    = errors.New("invalid venue ID")

	ErrMissingName   = errors.New("first and last name are required")
	ErrInvalidGender = errors.New("invalid gender")
	ErrInvalidAge    = errors.New("age must be between 1 and 100")

	ErrInvalidMobileNumber = errors.New("phone number must be 10 digits")
	ErrInvalidAadharNumber = errors.New("aadhar number must be 12 digits")
	ErrInvalidPANNumber    = errors.New("PAN must be in format: ABCDE1234F")

	ErrMissingAppointment  = errors.New("appointment time is required")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrAdvanceTooLarge     = errors.New("advance payment exceeds the allowed maximum")
	ErrPaymentModeRequired = errors.New("payment mode is required when advance payment is provided")
	ErrInvalidPaymentMode  = errors.New("invalid payment mode")
)
