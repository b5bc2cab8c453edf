package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jumpforge/internal/config"
	"github.com/vovakirdan/jumpforge/internal/storage"
)

// setup builds the logger and loads the configuration, applying flag
// overrides on top.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumpforge",
		Level:           level,
	})

	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Generation.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
		cfg.Storage.Enabled = flagDBPath != ""
	}
	return nil
}

// openStore opens the run ledger named by the configuration.
func openStore() (*storage.Store, error) {
	if !cfg.Storage.Enabled {
		return nil, fmt.Errorf("storage is disabled in config; pass --db to use a ledger")
	}
	return storage.Open(cfg.Storage.DBPath)
}

// terminalWidth returns the stdout width, or fallback when stdout is not a
// terminal.
func terminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}
