package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumpforge/internal/registry"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List all pattern recipes",
	Long:  `Shows every recipe registered with the generator.`,
	Run:   runRecipes,
}

func runRecipes(cmd *cobra.Command, args []string) {
	recipes := registry.List()

	if len(recipes) == 0 {
		fmt.Println("No recipes available.")
		return
	}

	fmt.Println("Available recipes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, r := range recipes {
		maxIDLen = max(maxIDLen, len(r.ID))
		maxTitleLen = max(maxTitleLen, len(r.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")

	for _, r := range recipes {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, r.ID, maxTitleLen, r.Title, r.Description)
	}

	fmt.Println()
	fmt.Println("Run 'jumpforge generate --recipe <id>' to generate one recipe.")
}
