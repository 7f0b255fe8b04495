package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/spellcore/internal/data"
	"github.com/udisondev/spellcore/internal/game/spell"
	"github.com/udisondev/spellcore/internal/logger"
)

var stacksCmd = &cobra.Command{
	Use:   "stacks <a> <b>",
	Short: "Check whether two spells can be active at the same time",
	Long: `Checks both directions: stacking rules are asymmetric because
block/overwrite directives are read from the second spell only.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		level, _ := cmd.Flags().GetInt("level")
		ignoreTriggers, _ := cmd.Flags().GetBool("ignore-triggers")
		if !cmd.Flags().Changed("ignore-triggers") {
			ignoreTriggers = cfg.Stacking.IgnoreTriggers
		}
		verbosity := logger.ParseVerbosity(cfg.Stacking.Verbosity)
		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			verbosity = logger.VerbosityEcho
		}
		if level <= 0 {
			level = spell.MaxPCLevel()
		}

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		first, err := a.resolve(ctx, args[0])
		if err != nil {
			return err
		}
		second, err := a.resolve(ctx, args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		r := a.resolver(spell.NewStaticSession(level), verbosity, out)
		for _, p := range []struct{ x, y *data.Spell }{{first, second}, {second, first}} {
			verdict := "does not stack"
			if r.Stacks(p.x, p.y, ignoreTriggers, false) {
				verdict = "stacks"
			}
			fmt.Fprintf(out, "%s (%d) -> %s (%d): %s\n", p.x.Name, p.x.ID, p.y.Name, p.y.ID, verdict)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stacksCmd)

	stacksCmd.Flags().Int("level", 0, "character level (0 = level cap)")
	stacksCmd.Flags().Bool("ignore-triggers", false, "do not follow trigger effects")
	stacksCmd.Flags().Bool("trace", false, "print every stacking decision")
}
