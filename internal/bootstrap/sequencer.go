// Package bootstrap drives the application startup sequence.
//
// A [Sequencer] executes a fixed, ordered list of steps (enter the
// application root, check runtime dependencies, apply schema migrations,
// seed default data) and finally hands the process over to the long-running
// server. The sequence halts on the first failing step: no retries, no
// rollback, no partial recovery. A failed step means the process exits
// non-zero without ever serving traffic, so the server can never come up
// against an unmigrated or unseeded database.
package bootstrap

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/adapter"
	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/handler"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/seed"
	"github.com/pankajshindecodes-stack/Eventroop/internal/server"
	"github.com/pankajshindecodes-stack/Eventroop/internal/service"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/internal/workers"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// Sequencer runs the startup steps in order and owns the resources they
// build up: the database connection opened by the dependency check is the one
// the migrations, the seeder and finally the server run on.
type Sequencer struct {
	cfg    *config.StructuredConfig
	build  models.BuildInfo
	logger *logger.Logger

	// populated progressively as the steps run
	db       *store.DB
	storages *store.Storages
	media    adapter.MediaStore
}

// NewSequencer builds a Sequencer over a loaded configuration.
func NewSequencer(cfg *config.StructuredConfig, build models.BuildInfo, logger *logger.Logger) *Sequencer {
	return &Sequencer{
		cfg:    cfg,
		build:  build,
		logger: logger,
	}
}

// step is one named stage of the startup sequence.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// Run executes the full startup sequence. It blocks in the final step for
// the lifetime of the server and returns nil after a graceful shutdown. On
// any step failure it returns immediately with the step's sentinel in the
// wrap chain; later steps do not run.
func (s *Sequencer) Run(ctx context.Context) error {
	return s.runSteps(ctx, []step{
		{name: "workdir", run: s.enterAppRoot},
		{name: "dependencies", run: s.checkDependencies},
		{name: "migrate", run: s.applyMigrations},
		{name: "seed", run: s.seedDefaults},
		{name: "serve", run: s.serve},
	})
}

func (s *Sequencer) runSteps(ctx context.Context, steps []step) error {
	for _, st := range steps {
		s.logger.Info().Str("step", st.name).Msg("bootstrap step started")
		start := time.Now()

		if err := st.run(ctx); err != nil {
			s.logger.Err(err).Str("step", st.name).Dur("took", time.Since(start)).Msg("bootstrap step failed, halting")
			return fmt.Errorf("bootstrap step %s: %w", st.name, err)
		}

		s.logger.Info().Str("step", st.name).Dur("took", time.Since(start)).Msg("bootstrap step finished")
	}

	return nil
}

// enterAppRoot changes the working directory into the configured application
// root so relative paths (media dir, JSON config) resolve against it. An
// empty root keeps the inherited working directory.
func (s *Sequencer) enterAppRoot(_ context.Context) error {
	root := s.cfg.App.Root
	if root == "" {
		s.logger.Debug().Msg("no app root configured, keeping inherited working directory")
		return nil
	}

	if err := os.Chdir(root); err != nil {
		s.logger.Err(err).Str("root", root).Msg("cannot enter app root")
		return fmt.Errorf("%q: %w", root, ErrAppRootNotFound)
	}

	return nil
}

// checkDependencies verifies the runtime collaborators declared by the
// configuration before anything touches them: it opens and pings the
// database pool and probes the media store. The connection it opens is kept
// for the rest of the sequence.
func (s *Sequencer) checkDependencies(ctx context.Context) error {
	db, err := store.NewConnectPostgres(ctx, s.cfg.Storage.DB, s.logger)
	if err != nil {
		return fmt.Errorf("%w: database: %v", ErrDependenciesUnmet, err)
	}
	s.db = db

	media, err := adapter.NewMediaStore(s.cfg.Storage.Media, s.logger)
	if err != nil {
		return fmt.Errorf("%w: media store: %v", ErrDependenciesUnmet, err)
	}
	if err := media.Healthy(ctx); err != nil {
		return fmt.Errorf("%w: media store: %v", ErrDependenciesUnmet, err)
	}
	s.media = media

	return nil
}

// applyMigrations brings the schema to the latest declared version. Goose
// tracks applied versions, so re-running against a migrated database is a
// no-op.
func (s *Sequencer) applyMigrations(_ context.Context) error {
	if err := s.db.Migrate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrationsFailed, err)
	}

	return nil
}

// seedDefaults writes the baseline reference data. Every seeder phase is an
// upsert, so a second run against a seeded database changes nothing.
func (s *Sequencer) seedDefaults(ctx context.Context) error {
	s.storages = store.NewStorages(s.db, s.logger)

	if err := seed.NewSeeder(s.storages, s.logger).Run(s.logger.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: %v", ErrSeedingFailed, err)
	}

	return nil
}

// serve resolves the bind address from the PORT environment value, wires the
// service and transport layers, and blocks serving traffic until a shutdown
// signal arrives. This is the only step that parses PORT; a missing or
// malformed value surfaces here as a bind failure, matching the deployment's
// contract of failing only at launch.
func (s *Sequencer) serve(_ context.Context) error {
	addr, err := resolveBindAddr(s.cfg.Server.Host, s.cfg.Port)
	if err != nil {
		return err
	}

	services := service.NewServices(s.storages, s.media, *s.cfg, s.build, s.logger)
	handlers := handler.NewHandlers(services, s.storages, s.media, s.logger)
	pool := workers.NewWorkers(s.cfg.Workers, s.storages, s.logger)

	srv, err := server.NewServer(handlers, pool, addr, s.cfg.Server, s.logger)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServeBind, err)
	}

	srv.RunServer()

	if err := s.db.Close(); err != nil {
		s.logger.Err(err).Msg("closing database connection after shutdown")
	}

	return nil
}

// defaultBindHost is the interface used when the configuration names none.
const defaultBindHost = "0.0.0.0"

// resolveBindAddr builds the listen address from the configured host and the
// platform-injected PORT value.
func resolveBindAddr(host, port string) (string, error) {
	if port == "" {
		return "", fmt.Errorf("%w: PORT is not set", ErrServeBind)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return "", fmt.Errorf("%w: PORT %q is not a valid TCP port", ErrServeBind, port)
	}

	if host == "" {
		host = defaultBindHost
	}

	return net.JoinHostPort(host, port), nil
}
