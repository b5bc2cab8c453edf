package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumpforge/internal/export"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the export JSON schema",
	Long: `Print the JSON schema describing exported pattern documents, or write
it to a file with --out.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "", "Write the schema to this file instead of stdout")
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := export.SchemaJSON()
	if err != nil {
		return err
	}
	if flagSchemaOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagSchemaOut, data, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	logger.Info("schema written", "path", flagSchemaOut)
	return nil
}
