// jumpforge generates obstacle patterns for a jump platformer, checks every
// jump against the runner's physics and exports the survivors as JSON.
//
// Usage:
//
//	jumpforge generate          - Generate, validate and export every recipe
//	jumpforge validate <path>   - Re-validate exported patterns
//	jumpforge recipes           - List available recipes
//	jumpforge physics           - Show the derived physics limits
//	jumpforge history [run]     - Show recent runs or one run's results
//	jumpforge stats             - Show acceptance per recipe
//	jumpforge schema            - Print the export JSON schema
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.jumpforge, ./configs)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <path>         - Run ledger database path
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumpforge/internal/config"
	// Import the recipe library to register its generators
	_ "github.com/vovakirdan/jumpforge/internal/library"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumpforge",
	Short: "jumpforge - Physics-checked obstacle patterns for runners",
	Long: `jumpforge builds obstacle courses for a side-scrolling jump game.
Every pattern is replayed against the runner's jump arc before it is
exported, so each bar can be reached and landed on.

Available commands:
  generate  - Generate, validate and export patterns
  validate  - Re-validate exported pattern files
  recipes   - List pattern recipes
  physics   - Show derived physics limits
  history   - Show recorded runs
  stats     - Show acceptance per recipe
  schema    - Print the export JSON schema

Examples:
  jumpforge generate --seed 42
  jumpforge generate --recipe wave-rider --out ./levels
  jumpforge validate ./patterns
  jumpforge physics --config ./configs/jumpforge.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run ledger database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(physicsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(schemaCmd)
}
