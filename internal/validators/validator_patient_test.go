// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validPatient() models.Patient {
	return models.Patient{
		CustomerID:      1,
		VenueID:         2,
		FirstName:       "Asha",
		LastName:        "Verma",
		Gender:          models.GenderFemale,
		Age:             42,
		MobileNumber:    "9876543210",
		AppointmentAt:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		RegistrationFee: models.DefaultRegistrationFee,
	}
}

// ---------------------------------------------------------------------------
// TestNewPatientValidator
// ---------------------------------------------------------------------------

func TestNewPatientValidator(t *testing.T) {
	v := NewPatientValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewPatientValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Patient value", func(t *testing.T) {
		p := validPatient()
		require.NoError(t, v.Validate(ctx, p))
	})

	t.Run("Patient pointer", func(t *testing.T) {
		p := validPatient()
		require.NoError(t, v.Validate(ctx, &p))
	})

	t.Run("unknown field", func(t *testing.T) {
		p := validPatient()
		require.ErrorIs(t, v.Validate(ctx, p, "blood_group"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidatePatient
// ---------------------------------------------------------------------------

func TestValidatePatient(t *testing.T) {
	v := NewPatientValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		p := validPatient()
		require.NoError(t, v.Validate(ctx, p))
	})

	t.Run("zero customer_id", func(t *testing.T) {
		p := validPatient()
		p.CustomerID = 0
		require.ErrorIs(t, v.Validate(ctx, p, FieldCustomerID), ErrInvalidCustomerID)
	})

	t.Run("zero venue_id", func(t *testing.T) {
		p := validPatient()
		p.VenueID = 0
		require.ErrorIs(t, v.Validate(ctx, p, FieldVenueID), ErrInvalidVenueID)
	})

	t.Run("missing first name", func(t *testing.T) {
		p := validPatient()
		p.FirstName = ""
		require.ErrorIs(t, v.Validate(ctx, p, FieldName), ErrMissingName)
	})

	t.Run("missing last name", func(t *testing.T) {
		p := validPatient()
		p.LastName = ""
		require.ErrorIs(t, v.Validate(ctx, p, FieldName), ErrMissingName)
	})

	t.Run("unknown gender code", func(t *testing.T) {
		p := validPatient()
		p.Gender = "X"
		require.ErrorIs(t, v.Validate(ctx, p, FieldGender), ErrInvalidGender)
	})

	t.Run("age zero is optional", func(t *testing.T) {
		p := validPatient()
		p.Age = 0
		require.NoError(t, v.Validate(ctx, p, FieldAge))
	})

	t.Run("age above range", func(t *testing.T) {
		p := validPatient()
		p.Age = 101
		require.ErrorIs(t, v.Validate(ctx, p, FieldAge), ErrInvalidAge)
	})

	t.Run("age below range", func(t *testing.T) {
		p := validPatient()
		p.Age = -4
		require.ErrorIs(t, v.Validate(ctx, p, FieldAge), ErrInvalidAge)
	})
}

// ---------------------------------------------------------------------------
// TestValidatePatient_ContactNumbers
// ---------------------------------------------------------------------------

func TestValidatePatient_ContactNumbers(t *testing.T) {
	v := NewPatientValidator()
	ctx := context.Background()

	t.Run("nine digits", func(t *testing.T) {
		p := validPatient()
		p.MobileNumber = "987654321"
		require.ErrorIs(t, v.Validate(ctx, p, FieldMobileNumber), ErrInvalidMobileNumber)
	})

	t.Run("eleven digits", func(t *testing.T) {
		p := validPatient()
		p.MobileNumber = "98765432100"
		require.ErrorIs(t, v.Validate(ctx, p, FieldMobileNumber), ErrInvalidMobileNumber)
	})

	t.Run("letters rejected", func(t *testing.T) {
		p := validPatient()
		p.MobileNumber = "98765abc10"
		require.ErrorIs(t, v.Validate(ctx, p, FieldMobileNumber), ErrInvalidMobileNumber)
	})

	t.Run("empty mobile rejected", func(t *testing.T) {
		p := validPatient()
		p.MobileNumber = ""
		require.ErrorIs(t, v.Validate(ctx, p, FieldMobileNumber), ErrInvalidMobileNumber)
	})

	t.Run("empty alternate allowed", func(t *testing.T) {
		p := validPatient()
		p.AlternateNumber = ""
		require.NoError(t, v.Validate(ctx, p, FieldAlternateNumber))
	})

	t.Run("short alternate rejected", func(t *testing.T) {
		p := validPatient()
		p.AlternateNumber = "12345"
		require.ErrorIs(t, v.Validate(ctx, p, FieldAlternateNumber), ErrInvalidMobileNumber)
	})
}

// ---------------------------------------------------------------------------
// TestValidatePatient_IdentityDocuments
// ---------------------------------------------------------------------------

func TestValidatePatient_IdentityDocuments(t *testing.T) {
	v := NewPatientValidator()
	ctx := context.Background()

	t.Run("empty aadhar allowed", func(t *testing.T) {
		p := validPatient()
		require.NoError(t, v.Validate(ctx, p, FieldAadharNumber))
	})

	t.Run("valid aadhar", func(t *testing.T) {
		p := validPatient()
		p.AadharNumber = "123412341234"
		require.NoError(t, v.Validate(ctx, p, FieldAadharNumber))
	})

	t.Run("short aadhar rejected", func(t *testing.T) {
		p := validPatient()
		p.AadharNumber = "12341234123"
		require.ErrorIs(t, v.Validate(ctx, p, FieldAadharNumber), ErrInvalidAadharNumber)
	})

	t.Run("aadhar with letters rejected", func(t *testing.T) {
		p := validPatient()
		p.AadharNumber = "12341234123A"
		require.ErrorIs(t, v.Validate(ctx, p, FieldAadharNumber), ErrInvalidAadharNumber)
	})

	t.Run("valid PAN", func(t *testing.T) {
		p := validPatient()
		p.PANNumber = "ABCDE1234F"
		require.NoError(t, v.Validate(ctx, p, FieldPANNumber))
	})

	t.Run("lowercase PAN rejected", func(t *testing.T) {
		p := validPatient()
		p.PANNumber = "abcde1234f"
		require.ErrorIs(t, v.Validate(ctx, p, FieldPANNumber), ErrInvalidPANNumber)
	})

	t.Run("malformed PAN rejected", func(t *testing.T) {
		p := validPatient()
		p.PANNumber = "AB1DE2345F"
		require.ErrorIs(t, v.Validate(ctx, p, FieldPANNumber), ErrInvalidPANNumber)
	})
}

// ---------------------------------------------------------------------------
// TestValidatePatient_Payment
// ---------------------------------------------------------------------------

func TestValidatePatient_Payment(t *testing.T) {
	v := NewPatientValidator()
	ctx := context.Background()

	t.Run("no advance needs no mode", func(t *testing.T) {
		p := validPatient()
		require.NoError(t, v.Validate(ctx, p, FieldPayment))
	})

	t.Run("advance without mode rejected", func(t *testing.T) {
		p := validPatient()
		p.AdvanceAmount = decimal.NewFromInt(1000)
		require.ErrorIs(t, v.Validate(ctx, p, FieldPayment), ErrPaymentModeRequired)
	})

	t.Run("advance with mode accepted", func(t *testing.T) {
		p := validPatient()
		p.AdvanceAmount = decimal.NewFromInt(1000)
		p.PaymentMode = models.PaymentModeUPI
		require.NoError(t, v.Validate(ctx, p, FieldPayment))
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		p := validPatient()
		p.AdvanceAmount = decimal.NewFromInt(1000)
		p.PaymentMode = "BARTER"
		require.ErrorIs(t, v.Validate(ctx, p, FieldPayment), ErrInvalidPaymentMode)
	})

	t.Run("negative advance rejected", func(t *testing.T) {
		p := validPatient()
		p.AdvanceAmount = decimal.NewFromInt(-1)
		require.ErrorIs(t, v.Validate(ctx, p, FieldPayment), ErrNegativeAmount)
	})

	t.Run("negative fee rejected", func(t *testing.T) {
		p := validPatient()
		p.RegistrationFee = decimal.NewFromInt(-1)
		require.ErrorIs(t, v.Validate(ctx, p, FieldPayment), ErrNegativeAmount)
	})

	t.Run("advance above cap rejected", func(t *testing.T) {
		p := validPatient()
		p.AdvanceAmount = decimal.NewFromInt(100001)
		p.PaymentMode = models.PaymentModeCash
		require.ErrorIs(t, v.Validate(ctx, p, FieldPayment), ErrAdvanceTooLarge)
	})

	t.Run("missing appointment rejected", func(t *testing.T) {
		p := validPatient()
		p.AppointmentAt = time.Time{}
		require.ErrorIs(t, v.Validate(ctx, p, FieldAppointment), ErrMissingAppointment)
	})
}
