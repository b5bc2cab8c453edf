package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumpforge/internal/batch"
	"github.com/vovakirdan/jumpforge/internal/config"
	"github.com/vovakirdan/jumpforge/internal/export"
)

var (
	flagOut          string
	flagRecipes      []string
	flagDifficulties []string
	flagAttempts     int
	flagNoKillzones  bool
	flagDryRun       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate, validate and export patterns",
	Long: `Run every recipe (or the ones named with --recipe), keep the first
pattern that passes validation, widen it into the difficulty variants and
write each variant as {out}/{slug}.json.

Rejected recipes are logged and recorded; they never stop the run.

Examples:
  jumpforge generate
  jumpforge generate --seed 42 --out ./levels
  jumpforge generate --recipe hill --recipe sawtooth --difficulty easy
  jumpforge generate --no-killzones --dry-run`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagOut, "out", "", "Output directory (default from config)")
	generateCmd.Flags().StringSliceVar(&flagRecipes, "recipe", nil, "Recipe ID to run (repeatable; default all)")
	generateCmd.Flags().StringSliceVar(&flagDifficulties, "difficulty", nil, "Difficulty to export: hard, medium, easy (repeatable; default all)")
	generateCmd.Flags().IntVar(&flagAttempts, "attempts", 0, "Generation attempts per recipe (default from config)")
	generateCmd.Flags().BoolVar(&flagNoKillzones, "no-killzones", false, "Keep hazards inside gaps instead of killzone markers")
	generateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Validate without writing files or recording the run")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen := cfg.Generation
	if flagOut != "" {
		gen.OutputDir = flagOut
	}
	if len(flagRecipes) > 0 {
		gen.Recipes = flagRecipes
	}
	if flagAttempts > 0 {
		gen.Attempts = flagAttempts
	}
	if flagNoKillzones {
		gen.InsertKillzones = false
	}
	if gen.Seed == 0 {
		gen.Seed = time.Now().UnixNano()
	}
	cfg.Generation = gen

	opts := cfg.BatchOptions()
	if len(flagDifficulties) > 0 {
		presets := make([]config.DifficultyPreset, 0, len(flagDifficulties))
		for _, d := range flagDifficulties {
			p, err := config.ParsePreset(d)
			if err != nil {
				return err
			}
			presets = append(presets, p)
		}
		opts.Levels = gen.Difficulty.Levels(presets...)
	}

	var (
		writer   *export.Writer
		recorder batch.Recorder
	)
	if !flagDryRun {
		writer = export.NewWriter(gen.OutputDir)
		if cfg.Storage.Enabled {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			recorder = store
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting run", "seed", gen.Seed, "out", gen.OutputDir, "dry_run", flagDryRun)

	runner := batch.NewRunner(cfg.Model(), writer, recorder, logger, opts)
	sum, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Seed:     %d\n", sum.Seed)
	if sum.RunID != 0 {
		fmt.Printf("Run:      #%d\n", sum.RunID)
	}
	fmt.Printf("Accepted: %d\n", sum.Accepted)
	fmt.Printf("Rejected: %d\n", sum.Rejected)
	if !flagDryRun {
		fmt.Printf("Output:   %s\n", gen.OutputDir)
	}
	return nil
}
