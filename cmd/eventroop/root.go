package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pankajshindecodes-stack/Eventroop/internal/bootstrap"
	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
)

var (
	cfgFile  string
	logLevel string

	// cfg and log are populated by PersistentPreRunE and shared with all
	// subcommands.
	cfg *config.StructuredConfig
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "eventroop",
	Short: "Eventroop — venue and staff management backend",
	Long: `Eventroop is the venue and staff management backend.

Invoked with no arguments it runs the full startup sequence: enter the
application root, check runtime dependencies, apply schema migrations, seed
default reference data, and serve the REST API on the platform-injected PORT.
The sequence halts on the first failing step and exits non-zero.`,
	SilenceUsage: true,
	RunE:         runSequence,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a JSON configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "zerolog level (debug, info, warn, error)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.GetStructuredConfig(flagOverrides(cmd))
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log = logger.NewLogger("eventroop", cfg.App.LogLevel)
		log.Debug().Any("config", cfg).Msg("received configs")

		return nil
	}

	rootCmd.AddCommand(migrateCmd, seedCmd, versionCmd)
}

// flagOverrides collects explicitly set command-line values into a partial
// config for the builder to merge; nil when the invocation carried no flags.
func flagOverrides(cmd *cobra.Command) *config.StructuredConfig {
	if !cmd.Flags().Changed("config") && !cmd.Flags().Changed("log-level") {
		return nil
	}

	overrides := new(config.StructuredConfig)
	if cmd.Flags().Changed("config") {
		overrides.JSONFilePath = cfgFile
	}
	if cmd.Flags().Changed("log-level") {
		overrides.App.LogLevel = logLevel
	}

	return overrides
}

func runSequence(cmd *cobra.Command, _ []string) error {
	log.Info().Str("version", buildInfo().Version).Msg("starting eventroop")

	if err := bootstrap.NewSequencer(cfg, buildInfo(), log).Run(cmd.Context()); err != nil {
		log.Err(err).Msg("bootstrap failed")
		return err
	}

	return nil
}
