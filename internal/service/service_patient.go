package service

import (
	"context"
	"fmt"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/internal/validators"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

type patientService struct {
	patientRepository store.PatientRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewPatientService returns a PatientService backed by the given repository.
// Registration input passes through the booking validator before it is saved.
func NewPatientService(patientRepository store.PatientRepository, logger *logger.Logger) PatientService {
	return &patientService{
		patientRepository: patientRepository,
		validator:         validators.NewPatientValidator(),
		logger:            logger,
	}
}

// RegisterPatient validates and stores a booking registration. A zero
// registration fee is replaced with the default fee before validation.
func (p *patientService) RegisterPatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	if patient.RegistrationFee.IsZero() {
		patient.RegistrationFee = models.DefaultRegistrationFee
	}

	if err := p.validator.Validate(ctx, patient); err != nil {
		return models.Patient{}, fmt.Errorf("error during booking validation before saving: %w", err)
	}

	created, err := p.patientRepository.CreatePatient(ctx, patient)
	if err != nil {
		log.Err(err).Int64("venue_id", patient.VenueID).Msg("booking registration failed")
		return models.Patient{}, fmt.Errorf("booking registration ended with error: %w", err)
	}

	log.Info().
		Int64("patient_id", created.ID).
		Int64("venue_id", created.VenueID).
		Str("total_payable", created.TotalPayable().String()).
		Msg("booking registered")

	return created, nil
}

func (p *patientService) GetPatient(ctx context.Context, patientID int64) (models.Patient, error) {
	patient, err := p.patientRepository.GetPatientByID(ctx, patientID)
	if err != nil {
		return models.Patient{}, fmt.Errorf("booking lookup ended with error: %w", err)
	}

	return patient, nil
}

// UpdatePatient revalidates the full record and persists it.
func (p *patientService) UpdatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	if patient.ID <= 0 {
		return models.Patient{}, fmt.Errorf("%w: booking id is required", ErrInvalidDataProvided)
	}

	if err := p.validator.Validate(ctx, patient); err != nil {
		return models.Patient{}, fmt.Errorf("error during booking validation before saving: %w", err)
	}

	updated, err := p.patientRepository.UpdatePatient(ctx, patient)
	if err != nil {
		log.Err(err).Int64("patient_id", patient.ID).Msg("booking update failed")
		return models.Patient{}, fmt.Errorf("booking update ended with error: %w", err)
	}

	return updated, nil
}

func (p *patientService) ListPatients(ctx context.Context, filter models.PatientFilter, page models.PageQuery) ([]models.Patient, int64, error) {
	patients, count, err := p.patientRepository.ListPatients(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("booking listing ended with error: %w", err)
	}

	return patients, count, nil
}
