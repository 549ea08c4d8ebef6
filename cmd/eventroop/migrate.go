package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
)

var migrateStatus bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations and exit",
	Long: `Migrate brings the database schema to the latest declared version and
exits. Applied versions are tracked, so running against an already migrated
database is a no-op. With --status the applied/pending state of every known
migration is printed instead.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "print migration status instead of applying")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	db, err := store.NewConnectPostgres(cmd.Context(), cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	if migrateStatus {
		return db.MigrationStatus()
	}

	if err := db.Migrate(); err != nil {
		return err
	}

	log.Info().Msg("schema is up to date")

	return nil
}
