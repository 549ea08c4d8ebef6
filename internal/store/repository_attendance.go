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

// attendanceRepository is the PostgreSQL-backed implementation of
// [AttendanceRepository]. It manages the "attendance_statuses" master table
// and the per-user, per-date "attendance" entries.
type attendanceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAttendanceRepository constructs an [AttendanceRepository] backed by the
// provided database connection and logger.
func NewAttendanceRepository(db *DB, logger *logger.Logger) AttendanceRepository {
	logger.Debug().Msg("creating attendance repository")
	return &attendanceRepository{
		db:     db,
		logger: logger,
	}
}

// scanAttendanceStatus reads one attendance_statuses row.
func scanAttendanceStatus(row interface{ Scan(dest ...any) error }) (models.AttendanceStatus, error) {
	var status models.AttendanceStatus

	err := row.Scan(
		&status.ID,
		&status.Code,
		&status.Label,
		&status.IsActive,
	)
	if err != nil {
		return models.AttendanceStatus{}, err
	}

	return status, nil
}

// scanAttendanceEntry reads one attendance row joined with the status code,
// in the column order of the listing queries.
func scanAttendanceEntry(row interface{ Scan(dest ...any) error }) (models.Attendance, error) {
	var entry models.Attendance
	var markedBy sql.NullInt64

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&entry.StatusID,
		&entry.StatusCode,
		&markedBy,
		&entry.Reason,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return models.Attendance{}, err
	}

	entry.MarkedBy = markedBy.Int64

	return entry, nil
}

// UpsertStatus inserts or refreshes one master-table status and returns its
// identifier. Conflict-safe so the seeder can run repeatedly.
//
// Error handling:
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *attendanceRepository) UpsertStatus(ctx context.Context, status models.AttendanceStatus) (int64, error) {
	log := logger.FromContext(ctx)

	var statusID int64
	err := r.db.QueryRowContext(ctx, upsertAttendanceStatus,
		status.Code, status.Label, status.IsActive,
	).Scan(&statusID)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.UpsertStatus").
			Str("code", status.Code).
			Msg("error executing query for upserting attendance status")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return statusID, nil
}

// ListStatuses returns every master-table status, active and inactive.
func (r *attendanceRepository) ListStatuses(ctx context.Context) ([]models.AttendanceStatus, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAttendanceStatuses)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.ListStatuses").
			Msg("failed to execute query for listing attendance statuses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.AttendanceStatus, 0, 10)

	for rows.Next() {
		status, scanErr := scanAttendanceStatus(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "attendanceRepository.ListStatuses").
				Msg("failed to scan attendance status row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, status)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "attendanceRepository.ListStatuses").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetStatusByCode retrieves one master-table status by its unique code.
//
// Error handling:
//   - No matching row → [ErrAttendanceStatusNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *attendanceRepository) GetStatusByCode(ctx context.Context, code string) (models.AttendanceStatus, error) {
	log := logger.FromContext(ctx)

	status, err := scanAttendanceStatus(r.db.QueryRowContext(ctx, getAttendanceStatusByCode, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AttendanceStatus{}, ErrAttendanceStatusNotFound
		}
		log.Err(err).Str("func", "attendanceRepository.GetStatusByCode").Msg("error: scanning error")
		return models.AttendanceStatus{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return status, nil
}

// CountStatuses returns the master-table row count. The seeder logs it after
// seeding.
func (r *attendanceRepository) CountStatuses(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	err := r.db.QueryRowContext(ctx, countAttendanceStatuses).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.CountStatuses").
			Msg("error executing query for counting attendance statuses")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// Mark records one user's status on one date and returns the stored entry.
// The (user_id, date) pair is unique, so marking twice updates the existing
// row in place.
//
// Error handling:
//   - foreign_key_violation (23503) on the status key →
//     [ErrAttendanceStatusNotFound].
//   - foreign_key_violation (23503) on a user key → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *attendanceRepository) Mark(ctx context.Context, entry models.Attendance) (models.Attendance, error) {
	return upsertMark(ctx, r.db, entry)
}

// upsertMark runs the attendance upsert on q, which is either the pooled
// connection or an open transaction.
func upsertMark(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, entry models.Attendance) (models.Attendance, error) {
	log := logger.FromContext(ctx)

	var saved models.Attendance
	var markedBy sql.NullInt64

	err := q.QueryRowContext(ctx, upsertAttendance,
		entry.UserID, entry.Date, entry.StatusID, nullID(entry.MarkedBy), entry.Reason,
	).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.Date,
		&saved.StatusID,
		&markedBy,
		&saved.Reason,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "upsertMark").
			Int64("user_id", entry.UserID).
			Msg("error executing query for marking attendance")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			if postgresConstraint(err) == "attendance_status_id_fkey" {
				return models.Attendance{}, ErrAttendanceStatusNotFound
			}
			return models.Attendance{}, ErrUserNotFound
		default:
			return models.Attendance{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved.MarkedBy = markedBy.Int64

	return saved, nil
}

// BulkMark stores a batch of entries inside one transaction. Either every
// entry lands or none does: the first failing entry rolls the batch back.
func (r *attendanceRepository) BulkMark(ctx context.Context, entries []models.Attendance) ([]models.Attendance, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.BulkMark").
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	saved := make([]models.Attendance, 0, len(entries))
	for number, entry := range entries {
		stored, err := upsertMark(ctx, tx, entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d of %d: %w", number+1, len(entries), err)
		}
		saved = append(saved, stored)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "attendanceRepository.BulkMark").
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return saved, nil
}

// ListAttendance returns one page of attendance entries matching the filter
// together with the total number of matches, so callers can build a
// pagination envelope. Entries carry the joined status code.
func (r *attendanceRepository) ListAttendance(ctx context.Context, filter models.AttendanceFilter, page models.PageQuery) ([]models.Attendance, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAttendanceQuery(ctx, filter, page)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.ListAttendance").
			Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.ListAttendance").
			Msg("failed to execute query for listing attendance entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Attendance, 0, 50)

	for rows.Next() {
		entry, scanErr := scanAttendanceEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "attendanceRepository.ListAttendance").
				Msg("failed to scan attendance row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "attendanceRepository.ListAttendance").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	total, err := r.countAttendance(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// countAttendance runs the COUNT twin of the listing query for the same
// filter.
func (r *attendanceRepository) countAttendance(ctx context.Context, filter models.AttendanceFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountAttendanceQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.countAttendance").
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.countAttendance").
			Msg("failed to execute query for counting attendance entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// SummaryByCode aggregates one user's entries inside [from, to] into
// per-status counts keyed by status code. Codes with no entries are absent
// from the map.
func (r *attendanceRepository) SummaryByCode(ctx context.Context, userID int64, from, to time.Time) (map[string]int, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, attendanceSummaryByCode, userID, from, to)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.SummaryByCode").
			Int64("user_id", userID).
			Msg("failed to execute query for summarizing attendance")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summary := make(map[string]int, 5)

	for rows.Next() {
		var code string
		var count int

		if scanErr := rows.Scan(&code, &count); scanErr != nil {
			log.Err(scanErr).
				Str("func", "attendanceRepository.SummaryByCode").
				Msg("failed to scan summary row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		summary[code] = count
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "attendanceRepository.SummaryByCode").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return summary, nil
}

// ListUnmarkedUserIDs returns the identifiers of active accounts of the
// given roles that have no attendance entry on the given date. The autofill
// worker marks them present.
func (r *attendanceRepository) ListUnmarkedUserIDs(ctx context.Context, types []models.UserType, date time.Time) ([]int64, error) {
	log := logger.FromContext(ctx)

	typeNames := make([]string, 0, len(types))
	for _, t := range types {
		typeNames = append(typeNames, string(t))
	}

	rows, err := r.db.QueryContext(ctx, listUnmarkedUserIDs, typeNames, date)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.ListUnmarkedUserIDs").
			Msg("failed to execute query for listing unmarked accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]int64, 0, 50)

	for rows.Next() {
		var userID int64

		if scanErr := rows.Scan(&userID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "attendanceRepository.ListUnmarkedUserIDs").
				Msg("failed to scan account id row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, userID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "attendanceRepository.ListUnmarkedUserIDs").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
