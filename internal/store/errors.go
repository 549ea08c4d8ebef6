package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// account fails because the email address is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrMobileAlreadyExists is returned when an attempt to register a new
	// account fails because the mobile number is already taken.
	ErrMobileAlreadyExists = errors.New("mobile number already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrHierarchyNotFound is returned when a user has no hierarchy node,
	// meaning the account was never placed inside an organization.
	ErrHierarchyNotFound = errors.New("hierarchy node was not found")

	// ErrHierarchyNodeExists is returned when a reporting-tree node is
	// inserted for an account that already has one.
	ErrHierarchyNodeExists = errors.New("hierarchy node already exists")

	// ErrRoleNotFound is returned when a permission group lookup by name
	// produces no match.
	ErrRoleNotFound = errors.New("role was not found")

	// ErrRefreshTokenNotFound is returned when a refresh token lookup by JTI
	// produces no match, meaning the token was never issued by this server
	// or has been purged.
	ErrRefreshTokenNotFound = errors.New("refresh token was not found")

	// ErrPlanNotFound is returned when a pricing plan or user plan lookup
	// produces no match.
	ErrPlanNotFound = errors.New("pricing plan was not found")

	// ErrPlanNameTaken is returned when creating a pricing plan fails
	// because a plan with the same name already exists.
	ErrPlanNameTaken = errors.New("pricing plan name already exists")

	// ErrVenueNotFound is returned when a venue lookup by ID produces no
	// match (including soft-deleted venues on listings that exclude them).
	ErrVenueNotFound = errors.New("venue was not found")

	// ErrServiceNotFound is returned when a service lookup by ID produces no
	// match.
	ErrServiceNotFound = errors.New("service was not found")

	// ErrResourceNotFound is returned when a resource lookup by ID produces
	// no match.
	ErrResourceNotFound = errors.New("resource was not found")

	// ErrPhotoNotFound is returned when a photo lookup by ID produces no
	// match.
	ErrPhotoNotFound = errors.New("photo was not found")

	// ErrPatientNotFound is returned when a booking record lookup by ID
	// produces no match.
	ErrPatientNotFound = errors.New("patient record was not found")

	// ErrAttendanceStatusNotFound is returned when an attendance status code
	// is absent from the master table.
	ErrAttendanceStatusNotFound = errors.New("attendance status was not found")

	// ErrAttendanceNotFound is returned when an attendance entry lookup
	// produces no match.
	ErrAttendanceNotFound = errors.New("attendance entry was not found")

	// ErrSalaryStructureNotFound is returned when a user has no active
	// salary structure.
	ErrSalaryStructureNotFound = errors.New("salary structure was not found")

	// ErrPaymentNotFound is returned when a payroll payment lookup by ID
	// produces no match.
	ErrPaymentNotFound = errors.New("payroll payment was not found")

	// ErrDuplicatePayment is returned when creating a payroll payment fails
	// because one already exists for the same user and salary month.
	ErrDuplicatePayment = errors.New("payment for this salary month already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when preparing a statement inside a
	// transaction fails.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
