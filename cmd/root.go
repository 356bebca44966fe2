package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"indiebyll/internal/app"
	"indiebyll/internal/config"
	"indiebyll/internal/logger"
	"indiebyll/internal/persist"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "indiebyll",
	Short: "Indiebyll - invoice and quotation generator for small studios",
	Long: `Indiebyll keeps per-client invoice and quotation history in a single
local data file and lets you build documents field by field from the
command line.

All state lives in one JSON file (INDIEBYLL_STORE_PATH, default
~/.indiebyll/data.json). Every mutating command saves the whole state
back to that file, so there is no separate "session" to manage: quit
at any point and pick up where you left off.`,
	Version: version,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openApp loads configuration and restores application state from the
// data file. Every subcommand goes through this.
func openApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	a, err := app.Load(persist.NewFileStore(cfg.StorePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", cfg.StorePath, err)
	}
	return a, nil
}
