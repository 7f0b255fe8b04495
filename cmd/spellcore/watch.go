package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the spell index in sync while spell data is reloaded",
	Long: `Reloads the configured spell source every --reload interval. Whenever the
contents change, the table is replaced and the triggered-spell index rebuilds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reload, _ := cmd.Flags().GetDuration("reload")

		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			return a.index.Watch(ctx, cfg.Spells.PollInterval)
		})
		g.Go(func() error {
			return a.reloadLoop(ctx, reload)
		})

		slog.Info("watching spell data", "source", cfg.Spells.Source, "reload", reload)
		return g.Wait()
	},
}

// reloadLoop re-reads the source until ctx is done. Failed reloads keep the old table.
func (a *app) reloadLoop(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if err := a.reload(ctx); err != nil {
			slog.Error("reloading spells", "error", err)
		}
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("reload", 30*time.Second, "spell source reload interval")
}
