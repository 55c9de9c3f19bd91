package main

import (
	"fmt"
	"os"

	"github.com/stenlik26/passvault/internal/app"
	"github.com/stenlik26/passvault/internal/config"
	"github.com/stenlik26/passvault/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so diagnostics go to a file.
	log := logger.NewFileLogger("passvault", cfg.App.LogFilePath)

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init application error")
	}

	if err = application.Run(); err != nil {
		log.Fatal().Err(err).Msg("application run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
