package bootstrap

import "errors"

// Step sentinels. Each bootstrap step wraps its failures with exactly one of
// these, so callers can tell which stage of the startup broke with
// [errors.Is].
var (
	// ErrAppRootNotFound is returned by the workdir step when the
	// configured application root cannot be entered.
	ErrAppRootNotFound = errors.New("application root not found")

	// ErrDependenciesUnmet is returned by the dependencies step when a
	// runtime collaborator (database, media store) is unreachable.
	ErrDependenciesUnmet = errors.New("runtime dependencies unmet")

	// ErrMigrationsFailed is returned by the migrate step when the schema
	// cannot be brought to the latest version.
	ErrMigrationsFailed = errors.New("schema migrations failed")

	// ErrSeedingFailed is returned by the seed step when the baseline
	// reference data cannot be written.
	ErrSeedingFailed = errors.New("seeding default data failed")

	// ErrServeBind is returned by the serve step when the listening socket
	// cannot be bound, including an unset or malformed PORT value.
	ErrServeBind = errors.New("cannot bind server port")
)
