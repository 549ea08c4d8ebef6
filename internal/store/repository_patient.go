package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// patientRepository is the PostgreSQL-backed implementation of
// [PatientRepository]. It manages the "patients" table holding customer
// booking records.
type patientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPatientRepository constructs a [PatientRepository] backed by the
// provided database connection and logger.
func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	logger.Debug().Msg("creating patient repository")
	return &patientRepository{
		db:     db,
		logger: logger,
	}
}

// scanPatient reads one full patients row in the canonical column order
// shared by every patient query. Works for both [sql.Row] and [sql.Rows].
func scanPatient(row interface{ Scan(dest ...any) error }) (models.Patient, error) {
	var patient models.Patient
	var serviceID sql.NullInt64

	err := row.Scan(
		&patient.ID,
		&patient.CustomerID,
		&patient.VenueID,
		&serviceID,
		&patient.FirstName,
		&patient.LastName,
		&patient.Gender,
		&patient.Age,
		&patient.MobileNumber,
		&patient.AlternateNumber,
		&patient.Email,
		&patient.Address,
		&patient.City,
		&patient.AadharNumber,
		&patient.PANNumber,
		&patient.Occupation,
		&patient.MedicalHistory,
		&patient.AppointmentAt,
		&patient.RegistrationFee,
		&patient.AdvanceAmount,
		&patient.PaymentMode,
		&patient.Notes,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		return models.Patient{}, err
	}

	patient.ServiceID = serviceID.Int64

	return patient, nil
}

// CreatePatient persists a booking record and returns the stored record.
//
// Error handling:
//   - foreign_key_violation (23503) on the venue key → [ErrVenueNotFound].
//   - foreign_key_violation (23503) on the service key → [ErrServiceNotFound].
//   - foreign_key_violation (23503) on the customer key → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *patientRepository) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPatient,
		patient.CustomerID, patient.VenueID, nullID(patient.ServiceID),
		patient.FirstName, patient.LastName, patient.Gender, patient.Age,
		patient.MobileNumber, patient.AlternateNumber, patient.Email,
		patient.Address, patient.City, patient.AadharNumber, patient.PANNumber,
		patient.Occupation, patient.MedicalHistory, patient.AppointmentAt,
		patient.RegistrationFee, patient.AdvanceAmount, patient.PaymentMode,
		patient.Notes,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "patientRepository.CreatePatient").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			switch postgresConstraint(err) {
			case "patients_venue_id_fkey":
				return models.Patient{}, ErrVenueNotFound
			case "patients_service_id_fkey":
				return models.Patient{}, ErrServiceNotFound
			}
			return models.Patient{}, ErrUserNotFound
		default:
			return models.Patient{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanPatient(row)
	if err != nil {
		log.Err(err).Str("func", "patientRepository.CreatePatient").Msg("error: scanning error")
		return models.Patient{}, err
	}

	return saved, nil
}

// GetPatientByID retrieves one booking record.
//
// Error handling:
//   - No matching row → [ErrPatientNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *patientRepository) GetPatientByID(ctx context.Context, patientID int64) (models.Patient, error) {
	log := logger.FromContext(ctx)

	patient, err := scanPatient(r.db.QueryRowContext(ctx, getPatientByID, patientID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Patient{}, ErrPatientNotFound
		}
		log.Err(err).Str("func", "patientRepository.GetPatientByID").Msg("error: scanning error")
		return models.Patient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return patient, nil
}

// UpdatePatient writes the mutable columns of a booking record and returns
// the updated record. CustomerID and VenueID are immutable once set.
//
// Error handling:
//   - No matching row → [ErrPatientNotFound].
//   - foreign_key_violation (23503) → [ErrServiceNotFound] (unknown service).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *patientRepository) UpdatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updatePatient,
		patient.ID,
		nullID(patient.ServiceID),
		patient.FirstName, patient.LastName, patient.Gender, patient.Age,
		patient.MobileNumber, patient.AlternateNumber, patient.Email,
		patient.Address, patient.City, patient.AadharNumber, patient.PANNumber,
		patient.Occupation, patient.MedicalHistory, patient.AppointmentAt,
		patient.RegistrationFee, patient.AdvanceAmount, patient.PaymentMode,
		patient.Notes,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "patientRepository.UpdatePatient").Msg("error: row is nil")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Patient{}, ErrServiceNotFound
		}
		return models.Patient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Patient{}, ErrPatientNotFound
		}
		log.Err(err).Str("func", "patientRepository.UpdatePatient").Msg("error: scanning error")
		return models.Patient{}, err
	}

	return updated, nil
}

// ListPatients returns one page of booking records matching the filter
// together with the total number of matches, so callers can build a
// pagination envelope.
func (r *patientRepository) ListPatients(ctx context.Context, filter models.PatientFilter, page models.PageQuery) ([]models.Patient, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPatientsQuery(ctx, filter, page)
	if err != nil {
		log.Err(err).
			Str("func", "patientRepository.ListPatients").
			Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "patientRepository.ListPatients").
			Msg("failed to execute query for listing booking records")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Patient, 0, 50)

	for rows.Next() {
		item, scanErr := scanPatient(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "patientRepository.ListPatients").
				Msg("failed to scan booking row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "patientRepository.ListPatients").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	total, err := r.countPatients(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// countPatients runs the COUNT twin of the listing query for the same
// filter.
func (r *patientRepository) countPatients(ctx context.Context, filter models.PatientFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountPatientsQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "patientRepository.countPatients").
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "patientRepository.countPatients").
			Msg("failed to execute query for counting booking records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
