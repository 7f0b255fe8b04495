package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/udisondev/spellcore/internal/data"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the YAML spell file format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")

		raw, err := json.MarshalIndent(buildSchema(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema: %w", err)
		}
		raw = append(raw, '\n')

		if outPath == "" {
			_, err := cmd.OutOrStdout().Write(raw)
			return err
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("create schema directory: %w", err)
		}
		if err := os.WriteFile(outPath, raw, 0o644); err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
		return nil
	},
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(data.SpellFile))
	schema.Title = "spellcore spell file"
	schema.Description = "Spell definitions: up to 12 effect slots per spell, unused slots are padded with 254."
	return schema
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().String("out", "", "write the schema to a file instead of stdout")
}
