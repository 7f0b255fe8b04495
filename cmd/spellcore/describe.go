package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/spellcore/internal/game/spell"
)

var describeCmd = &cobra.Command{
	Use:   "describe <id|name>",
	Short: "Print the effect descriptions of a spell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		capacity, _ := cmd.Flags().GetInt("capacity")
		if capacity <= 0 {
			capacity = cfg.Describe.Capacity
		}

		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		s, err := a.resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		d := a.describer(spell.NewStaticSession(level))
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d: %s\n", s.ID, s.Name)
		if cat := a.index.Category(s); cat != 0 {
			fmt.Fprintf(out, "Category: %d/%d\n", cat, a.index.Subcategory(s))
		}
		if parent, ok := a.index.TriggerParent(s.ID); ok {
			if p := a.table.Spell(parent); p != nil {
				fmt.Fprintf(out, "Triggered by: %s (%d)\n", p.Name, p.ID)
			}
		}
		if text := d.DescribeAllEffects(s, capacity); text != "" {
			fmt.Fprintln(out, text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().Int("level", 0, "character level (0 = describe.default_level, then the level cap)")
	describeCmd.Flags().Int("capacity", 0, "output limit in bytes (0 = describe.capacity)")
}
