package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/udisondev/spellcore/internal/data"
	"github.com/udisondev/spellcore/internal/db"
)

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Load YAML spell files into the spell store",
	Long: `Parses the given files (spells.files when none are given), validates them as
one spell set and replaces the contents of the configured database.
The import is skipped when the stored fingerprint already matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		force, _ := cmd.Flags().GetBool("force")
		files := args
		if len(files) == 0 {
			files = cfg.Spells.Files
		}
		if len(files) == 0 {
			return fmt.Errorf("no spell files given")
		}

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("Parsing spell files"),
			progressbar.OptionShowCount(),
		)
		var all []*data.Spell
		for _, path := range files {
			spells, err := data.LoadSpellFiles(ctx, path)
			if err != nil {
				return err
			}
			all = append(all, spells...)
			_ = bar.Add(1)
		}
		_ = bar.Finish()

		// Replace проверяет дубликаты между файлами и сортирует по ID.
		table := data.NewSpellTable()
		if err := table.Replace(all); err != nil {
			return fmt.Errorf("validating spells: %w", err)
		}
		spells := make([]*data.Spell, 0, table.Len())
		table.Range(func(s *data.Spell) bool {
			spells = append(spells, s)
			return true
		})
		fp := table.Fingerprint()

		store, err := db.Open(ctx, cfg.Database.Driver, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("opening spell store: %w", err)
		}
		defer store.Close()

		stored, err := store.Fingerprint(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if stored == fp && !force {
			fmt.Fprintf(out, "spells unchanged (%d spells, fingerprint %s), skipping\n", len(spells), fp[:12])
			return nil
		}

		if err := store.SaveSpells(ctx, spells, fp); err != nil {
			return fmt.Errorf("saving spells: %w", err)
		}
		fmt.Fprintf(out, "imported %d spells into %s (fingerprint %s)\n", len(spells), cfg.Database.Driver, fp[:12])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().Bool("force", false, "import even when the stored fingerprint matches")
}
