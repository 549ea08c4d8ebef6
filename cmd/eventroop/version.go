package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information and exit",
	// version needs no configuration; skip the root pre-run so it works in
	// an unconfigured environment.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(*cobra.Command, []string) {
		fmt.Println(buildInfo())
	},
}
