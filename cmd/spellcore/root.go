package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/udisondev/spellcore/internal/config"
	"github.com/udisondev/spellcore/internal/game/spell"
	"github.com/udisondev/spellcore/internal/logger"
)

// DefaultConfigPath is used when neither --config nor SPELLCORE_CONFIG is set.
const DefaultConfigPath = "config/spellcore.yaml"

var (
	cfg       config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "spellcore",
	Short:         "Describe spell effects and check buff stacking",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		var l *slog.Logger
		l, logCloser = logger.New(cfg.Logging, cmd.ErrOrStderr())
		slog.SetDefault(l)
		spell.SetMaxPCLevel(cfg.Spells.MaxPlayerLevel)

		slog.Debug("config loaded",
			"source", cfg.Spells.Source,
			"driver", cfg.Database.Driver,
			"max_player_level", cfg.Spells.MaxPlayerLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

func init() {
	viper.SetEnvPrefix("spellcore")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.String("config", DefaultConfigPath, "path to the YAML config")
	flags.String("log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	flags.String("source", "", "spell source: files or database")
	flags.StringSlice("spells", nil, "spell YAML files (overrides spells.files)")
	flags.String("db-driver", "", "spell store driver: sqlite or postgres")
	flags.String("db-path", "", "sqlite database file")

	bind := map[string]string{
		"config":          "config",
		"log_level":       "log-level",
		"spells.source":   "source",
		"spells.files":    "spells",
		"database.driver": "db-driver",
		"database.path":   "db-path",
	}
	for key, flag := range bind {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

// loadConfig reads the YAML config, then applies flag and SPELLCORE_* overrides.
func loadConfig() (config.Config, error) {
	c, err := config.Load(viper.GetString("config"))
	if err != nil {
		return c, fmt.Errorf("loading config: %w", err)
	}

	if v := viper.GetString("log_level"); v != "" {
		c.Logging.Level = v
	}
	if v := viper.GetString("spells.source"); v != "" {
		c.Spells.Source = v
	}
	if v := viper.GetStringSlice("spells.files"); len(v) > 0 {
		c.Spells.Files = v
	}
	if v := viper.GetString("database.driver"); v != "" {
		c.Database.Driver = v
	}
	if v := viper.GetString("database.path"); v != "" {
		c.Database.Path = v
	}
	if v := viper.GetString("stacking.verbosity"); v != "" {
		c.Stacking.Verbosity = v
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("validating config: %w", err)
	}
	return c, nil
}
