package validators

import (
	"context"
	"regexp"

	"github.com/pankajshindecodes-stack/Eventroop/models"
	"github.com/shopspring/decimal"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldCustomerID targets the account the booking is registered under.
	FieldCustomerID = "customer_id"

	// FieldVenueID targets the venue the appointment is booked at.
	FieldVenueID = "venue_id"

	// FieldName targets the first and last name pair.
	FieldName = "name"

	// FieldGender targets the gender code.
	FieldGender = "gender"

	// FieldAge targets the optional age field.
	FieldAge = "age"

	// FieldMobileNumber targets the primary contact number.
	FieldMobileNumber = "mobile_number"

	// FieldAlternateNumber targets the optional secondary contact number.
	FieldAlternateNumber = "alternate_number"

	// FieldAadharNumber targets the optional national identity number.
	FieldAadharNumber = "aadhar_number"

	// FieldPANNumber targets the optional tax identifier.
	FieldPANNumber = "pan_number"

	// FieldAppointment targets the scheduled appointment slot.
	FieldAppointment = "appointment_at"

	// FieldPayment targets the registration fee, advance and payment mode
	// as one cross-field rule set.
	FieldPayment = "payment"
)

var (
	phonePattern  = regexp.MustCompile(`^\d{10}$`)
	aadharPattern = regexp.MustCompile(`^\d{12}$`)
	panPattern    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// maxAdvanceAmount caps the advance collected at registration.
var maxAdvanceAmount = decimal.NewFromInt(100000)

var allowedGenders = []string{
	models.GenderMale,
	models.GenderFemale,
	models.GenderOther,
	models.GenderUndisclosed,
}

// PatientValidator enforces the booking registration rules: ten-digit
// contact numbers, identity document formats and the advance-payment mode
// requirement.
type PatientValidator struct {
}

func NewPatientValidator() Validator {
	return &PatientValidator{}
}

func (v *PatientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Patient:
		return v.validatePatient(ctx, value, fields...)
	case *models.Patient:
		return v.validatePatient(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidGender(gender string) bool {
	for _, g := range allowedGenders {
		if gender == g {
			return true
		}
	}
	return false
}

func (v *PatientValidator) validatePatient(ctx context.Context, patient models.Patient, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldCustomerID, FieldVenueID, FieldName, FieldGender, FieldAge,
			FieldMobileNumber, FieldAlternateNumber, FieldAadharNumber,
			FieldPANNumber, FieldAppointment, FieldPayment,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldCustomerID:
			if patient.CustomerID <= 0 {
				return ErrInvalidCustomerID
			}
		case FieldVenueID:
			if patient.VenueID <= 0 {
				return ErrInvalidVenueID
			}
		case FieldName:
			if patient.FirstName == "" || patient.LastName == "" {
				return ErrMissingName
			}
		case FieldGender:
			if !isValidGender(patient.Gender) {
				return ErrInvalidGender
			}
		case FieldAge:
			// age is optional; zero means not provided
			if patient.Age != 0 && (patient.Age < 1 || patient.Age > 100) {
				return ErrInvalidAge
			}
		case FieldMobileNumber:
			if !phonePattern.MatchString(patient.MobileNumber) {
				return ErrInvalidMobileNumber
			}
		case FieldAlternateNumber:
			if patient.AlternateNumber != "" && !phonePattern.MatchString(patient.AlternateNumber) {
				return ErrInvalidMobileNumber
			}
		case FieldAadharNumber:
			if patient.AadharNumber != "" && !aadharPattern.MatchString(patient.AadharNumber) {
				return ErrInvalidAadharNumber
			}
		case FieldPANNumber:
			if patient.PANNumber != "" && !panPattern.MatchString(patient.PANNumber) {
				return ErrInvalidPANNumber
			}
		case FieldAppointment:
			if patient.AppointmentAt.IsZero() {
				return ErrMissingAppointment
			}
		case FieldPayment:
			if err := v.validatePayment(patient); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayment enforces the cross-field payment rules: non-negative
// amounts, the advance cap, and a payment mode whenever an advance was
// collected.
func (v *PatientValidator) validatePayment(patient models.Patient) error {
	if patient.RegistrationFee.IsNegative() || patient.AdvanceAmount.IsNegative() {
		return ErrNegativeAmount
	}

	if patient.AdvanceAmount.GreaterThan(maxAdvanceAmount) {
		return ErrAdvanceTooLarge
	}

	if patient.AdvanceAmount.IsPositive() && patient.PaymentMode == "" {
		return ErrPaymentModeRequired
	}

	if patient.PaymentMode != "" && !models.ValidPaymentMode(patient.PaymentMode) {
		return ErrInvalidPaymentMode
	}

	return nil
}
