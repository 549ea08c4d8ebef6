package store

import (
	"context"
	"database/sql"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/migrations"
)

// DB wraps the shared *sql.DB connection with the error classifier and the
// logger every repository reaches through it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations over this connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrationStatus prints the applied/pending state of every known migration.
func (db *DB) MigrationStatus() error {
	return migrations.Status(db.DB)
}

// Retryable reports whether err describes a transient database failure that
// may succeed if the operation is attempted again.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// Health pings the database, bounding the check with the given context.
func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}
