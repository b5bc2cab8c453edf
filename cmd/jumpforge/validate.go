package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumpforge/internal/export"
	"github.com/vovakirdan/jumpforge/internal/pattern"
)

var (
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

var validateCmd = &cobra.Command{
	Use:   "validate <dir|file>...",
	Short: "Re-validate exported pattern files",
	Long: `Load exported patterns and replay every jump against the configured
physics. Directories are searched recursively for .json files.

Exits with a non-zero status if any file fails to parse or validate.

Examples:
  jumpforge validate ./patterns
  jumpforge validate ./patterns/hill_easy.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	grid := cfg.PatternGrid()
	model := cfg.Model()
	opts := cfg.ValidateOptions()

	var loaded []export.Loaded
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		loader := export.NewLoader(path, grid)
		if !info.IsDir() {
			loaded = append(loaded, loader.LoadFile(path))
			continue
		}
		all, err := loader.LoadAll()
		if err != nil {
			return err
		}
		loaded = append(loaded, all...)
	}

	if len(loaded) == 0 {
		fmt.Println("No pattern files found.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Validating %d pattern(s)", len(loaded))))
	fmt.Println()

	failed := 0
	for _, l := range loaded {
		if l.Err != nil {
			failed++
			fmt.Printf("  %s  %s\n", failStyle.Render("FAIL"), l.Slug)
			fmt.Printf("        %s\n", dimStyle.Render(l.Err.Error()))
			continue
		}

		res := pattern.Validate(l.Pattern, model, opts)
		if !res.Valid {
			failed++
			fmt.Printf("  %s  %s\n", failStyle.Render("FAIL"), l.Slug)
			fmt.Printf("        %s\n", dimStyle.Render(res.Error()))
			continue
		}

		ground := "airborne"
		if res.TouchesGround {
			ground = "touches ground"
		}
		fmt.Printf("  %s  %s %s\n", passStyle.Render("PASS"), l.Slug,
			dimStyle.Render(fmt.Sprintf("(%d obstacles, %s)", len(l.Pattern.Obstacles), ground)))
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d of %d patterns failed validation", failed, len(loaded))
	}
	fmt.Println(passStyle.Render(fmt.Sprintf("All %d patterns valid.", len(loaded))))
	return nil
}
