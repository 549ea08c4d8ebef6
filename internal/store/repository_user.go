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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, profile maintenance and listing
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// scanUser reads one full users row in the canonical column order shared by
// every user query. Works for both [sql.Row] and [sql.Rows].
func scanUser(row interface{ Scan(dest ...any) error }) (models.User, error) {
	var user models.User
	var createdBy sql.NullInt64

	err := row.Scan(
		&user.UserID,
		&user.EmployeeID,
		&user.Email,
		&user.MobileNumber,
		&user.EmergencyContact,
		&user.FirstName,
		&user.MiddleName,
		&user.LastName,
		&user.Gender,
		&user.Category,
		&user.UserType,
		&user.Address,
		&user.City,
		&user.IsActive,
		&user.IsStaff,
		&user.DateJoined,
		&user.LastWorkingDay,
		&user.OrderTypes,
		&user.Skills,
		&user.TargetPercent,
		&user.QCRequired,
		&createdBy,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.CreatedBy = createdBy.Int64

	return user, nil
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique_violation (23505) on the email key → [ErrEmailAlreadyExists].
//   - unique_violation (23505) on the mobile key → [ErrMobileAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.MobileNumber, user.EmergencyContact,
		user.FirstName, user.MiddleName, user.LastName,
		user.Gender, user.Category, user.UserType, user.Address, user.City,
		user.IsActive, user.IsStaff, user.DateJoined,
		user.OrderTypes, user.Skills, user.TargetPercent, user.QCRequired,
		nullID(user.CreatedBy), user.PasswordHash,
	)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			if postgresConstraint(err) == "users_mobile_number_key" {
				return models.User{}, ErrMobileAlreadyExists
			}
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	saved, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return saved, nil
}

// FindUserByID retrieves the account with the given identifier.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByIdentifier retrieves the account whose email or mobile number
// matches the given login identifier. Both columns are unique, so at most one
// row matches.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByIdentifier, identifier)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByIdentifier").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByIdentifier").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateProfile writes the mutable profile columns of the given account and
// returns the updated record. Identity, role and credential columns are not
// touched; those have dedicated methods.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateUserProfile,
		user.UserID,
		user.FirstName, user.MiddleName, user.LastName,
		user.EmergencyContact, user.Gender, user.Address, user.City,
		user.OrderTypes, user.Skills,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: scanning error")
		return models.User{}, err
	}

	return updated, nil
}

// UpdatePassword replaces the stored password hash of the given account.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, userID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error executing query for updating password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetEmployeeID stamps the generated employee identifier on the given
// account.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *userRepository) SetEmployeeID(ctx context.Context, userID int64, employeeID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setUserEmployeeID, userID, employeeID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetEmployeeID").Msg("error executing query for setting employee id")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetActive flips the login gate of the given account. Used by owner
// approval and deactivation flows.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *userRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setUserActive, userID, active)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetActive").Msg("error executing query for toggling account state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CountEmployeeIDs returns how many accounts carry an employee identifier
// starting with the given prefix. The employee ID generator uses the count to
// pick the next sequence number.
func (r *userRepository) CountEmployeeIDs(ctx context.Context, prefix string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	err := r.db.QueryRowContext(ctx, countUsersByEmployeeIDPrefix, prefix+"%").Scan(&count)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountEmployeeIDs").Msg("error executing query for counting employee ids")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListUsers returns one page of accounts matching the filter together with
// the total number of matches, so callers can build a pagination envelope.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(ctx, filter, page)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.ListUsers").
			Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.ListUsers").
			Msg("failed to execute query for listing accounts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.User, 0, 50)

	for rows.Next() {
		item, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "userRepository.ListUsers").
				Msg("failed to scan account row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "userRepository.ListUsers").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	total, err := r.countUsers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// countUsers runs the COUNT twin of the listing query for the same filter.
func (r *userRepository) countUsers(ctx context.Context, filter models.UserFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.countUsers").
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "userRepository.countUsers").
			Msg("failed to execute query for counting accounts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
