package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pankajshindecodes-stack/Eventroop/internal/seed"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write default reference data and exit",
	Long: `Seed writes the baseline reference data the application expects: the
permission catalog with its per-role grants, the attendance status dictionary
and the starter pricing plan. Every phase is an upsert, so reseeding an
already seeded database changes nothing.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	db, err := store.NewConnectPostgres(cmd.Context(), cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	storages := store.NewStorages(db, log)

	if err := seed.NewSeeder(storages, log).Run(log.WithContext(cmd.Context())); err != nil {
		return err
	}

	log.Info().Msg("default data seeded")

	return nil
}
