package main

import (
	"os"

	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// Build-time metadata injected through -ldflags.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func buildInfo() models.BuildInfo {
	return models.NewBuildInfo(buildVersion, buildDate, buildCommit)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
