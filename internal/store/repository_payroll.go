package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// payrollRepository is the PostgreSQL-backed implementation of
// [PayrollRepository]. It manages the "salary_structures" and
// "payroll_payments" tables.
type payrollRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPayrollRepository constructs a [PayrollRepository] backed by the
// provided database connection and logger.
func NewPayrollRepository(db *DB, logger *logger.Logger) PayrollRepository {
	logger.Debug().Msg("creating payroll repository")
	return &payrollRepository{
		db:     db,
		logger: logger,
	}
}

// scanSalaryStructure reads one salary_structures row in the canonical
// column order.
func scanSalaryStructure(row interface{ Scan(dest ...any) error }) (models.SalaryStructure, error) {
	var structure models.SalaryStructure

	err := row.Scan(
		&structure.ID,
		&structure.UserID,
		&structure.SalaryType,
		&structure.BaseAmount,
		&structure.AdvanceAmount,
		&structure.EffectiveFrom,
		&structure.IsActive,
		&structure.CreatedAt,
		&structure.UpdatedAt,
	)
	if err != nil {
		return models.SalaryStructure{}, err
	}

	return structure, nil
}

// scanPayrollPayment reads one payroll_payments row in the canonical column
// order.
func scanPayrollPayment(row interface{ Scan(dest ...any) error }) (models.PayrollPayment, error) {
	var payment models.PayrollPayment

	err := row.Scan(
		&payment.ID,
		&payment.OwnerID,
		&payment.UserID,
		&payment.SalaryMonth,
		&payment.PayableDays,
		&payment.Amount,
		&payment.Status,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return models.PayrollPayment{}, err
	}

	return payment, nil
}

// SetSalaryStructure installs a new compensation definition for an account.
// The previous active structure (if any) is deactivated in the same
// transaction so the partial unique index on active structures is never
// violated. The full history stays queryable.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrUserNotFound] (unknown account).
//   - Transaction failures → wrapped with the transaction sentinels.
func (r *payrollRepository) SetSalaryStructure(ctx context.Context, structure models.SalaryStructure) (models.SalaryStructure, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "payrollRepository.SetSalaryStructure").
			Int64("user_id", structure.UserID).
			Msg("failed to begin transaction")
		return models.SalaryStructure{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deactivateSalaryStructures, structure.UserID); err != nil {
		log.Err(err).
			Str("func", "payrollRepository.SetSalaryStructure").
			Int64("user_id", structure.UserID).
			Msg("failed to deactivate previous salary structures")
		return models.SalaryStructure{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := scanSalaryStructure(tx.QueryRowContext(ctx, createSalaryStructure,
		structure.UserID, structure.SalaryType, structure.BaseAmount,
		structure.AdvanceAmount, structure.EffectiveFrom,
	))
	if err != nil {
		log.Err(err).
			Str("func", "payrollRepository.SetSalaryStructure").
			Int64("user_id", structure.UserID).
			Msg("failed to insert salary structure")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.SalaryStructure{}, ErrUserNotFound
		}
		return models.SalaryStructure{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "payrollRepository.SetSalaryStructure").
			Int64("user_id", structure.UserID).
			Msg("failed to commit transaction")
		return models.SalaryStructure{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return saved, nil
}

// GetActiveSalaryStructure retrieves the compensation definition currently
// in force for an account.
//
// Error handling:
//   - No active structure → [ErrSalaryStructureNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *payrollRepository) GetActiveSalaryStructure(ctx context.Context, userID int64) (models.SalaryStructure, error) {
	log := logger.FromContext(ctx)

	structure, err := scanSalaryStructure(r.db.QueryRowContext(ctx, getActiveSalaryStructure, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SalaryStructure{}, ErrSalaryStructureNotFound
		}
		log.Err(err).Str("func", "payrollRepository.GetActiveSalaryStructure").Msg("error: scanning error")
		return models.SalaryStructure{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return structure, nil
}

// ListSalaryStructures returns the compensation history of one account,
// most recent first.
func (r *payrollRepository) ListSalaryStructures(ctx context.Context, userID int64) ([]models.SalaryStructure, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSalaryStructures, userID)
	if err != nil {
		log.Err(err).
			Str("func", "payrollRepository.ListSalaryStructures").
			Int64("user_id", userID).
			Msg("failed to execute query for listing salary structures")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.SalaryStructure, 0, 10)

	for rows.Next() {
		structure, scanErr := scanSalaryStructure(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "payrollRepository.ListSalaryStructures").
				Int64("user_id", userID).
				Msg("failed to scan salary structure row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, structure)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "payrollRepository.ListSalaryStructures").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// CreatePayment records a pending disbursement for one salary month and
// returns the stored record.
//
// Error handling:
//   - unique_violation (23505) on (user_id, salary_month) →
//     [ErrDuplicatePayment].
//   - foreign_key_violation (23503) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *payrollRepository) CreatePayment(ctx context.Context, payment models.PayrollPayment) (models.PayrollPayment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPayrollPayment,
		payment.OwnerID, payment.UserID, payment.SalaryMonth,
		payment.PayableDays, payment.Amount, payment.Status,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "payrollRepository.CreatePayment").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.PayrollPayment{}, ErrDuplicatePayment
		case pgerrcode.ForeignKeyViolation:
			return models.PayrollPayment{}, ErrUserNotFound
		default:
			return models.PayrollPayment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanPayrollPayment(row)
	if err != nil {
		log.Err(err).Str("func", "payrollRepository.CreatePayment").Msg("error: scanning error")
		return models.PayrollPayment{}, err
	}

	return saved, nil
}

// GetPaymentByID retrieves one disbursement record.
//
// Error handling:
//   - No matching row → [ErrPaymentNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *payrollRepository) GetPaymentByID(ctx context.Context, paymentID int64) (models.PayrollPayment, error) {
	log := logger.FromContext(ctx)

	payment, err := scanPayrollPayment(r.db.QueryRowContext(ctx, getPayrollPaymentByID, paymentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PayrollPayment{}, ErrPaymentNotFound
		}
		log.Err(err).Str("func", "payrollRepository.GetPaymentByID").Msg("error: scanning error")
		return models.PayrollPayment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return payment, nil
}

// UpdatePaymentStatus moves a disbursement through its lifecycle and returns
// the updated record. paidAt is stamped when the payment settles and nil
// otherwise.
//
// Error handling:
//   - No matching row → [ErrPaymentNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *payrollRepository) UpdatePaymentStatus(ctx context.Context, paymentID int64, status string, paidAt *time.Time) (models.PayrollPayment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updatePayrollPaymentStatus, paymentID, status, paidAt)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "payrollRepository.UpdatePaymentStatus").Msg("error: row is nil")
		return models.PayrollPayment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanPayrollPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PayrollPayment{}, ErrPaymentNotFound
		}
		log.Err(err).Str("func", "payrollRepository.UpdatePaymentStatus").Msg("error: scanning error")
		return models.PayrollPayment{}, err
	}

	return updated, nil
}

// ListPayments returns one page of disbursements matching the filter
// together with the total number of matches, so callers can build a
// pagination envelope.
func (r *payrollRepository) ListPayments(ctx context.Context, filter models.PaymentFilter, page models.PageQuery) ([]models.PayrollPayment, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPaymentsQuery(ctx, filter, page)
	if err != nil {
		log.Err(err).
			Str("func", "payrollRepository.ListPayments").
			Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "payrollRepository.ListPayments").
			Msg("failed to execute query for listing payroll payments")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.PayrollPayment, 0, 50)

	for rows.Next() {
		payment, scanErr := scanPayrollPayment(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "payrollRepository.ListPayments").
				Msg("failed to scan payroll payment row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, payment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "payrollRepository.ListPayments").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	total, err := r.countPayments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// countPayments runs the COUNT twin of the listing query for the same
// filter.
func (r *payrollRepository) countPayments(ctx context.Context, filter models.PaymentFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountPaymentsQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "payrollRepository.countPayments").
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "payrollRepository.countPayments").
			Msg("failed to execute query for counting payroll payments")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
