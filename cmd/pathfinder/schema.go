package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-pathfinder/internal/encoding"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the problem documents",
	Long: `Print a JSON schema describing settings.json, initial_state.json,
target_state.json and static_state.json, or write it to --out.

Examples:
  pathfinder schema
  pathfinder schema --out ./schema/problem.json`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "", "Path to write the schema")
}

func runSchema(_ *cobra.Command, _ []string) error {
	data, err := encoding.SchemaJSON()
	if err != nil {
		return err
	}

	if flagSchemaOut == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(flagSchemaOut), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	tmpPath := flagSchemaOut + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, flagSchemaOut); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
