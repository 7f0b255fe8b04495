package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/spellcore/internal/logger"
)

// Config holds all configuration for spellcore.
type Config struct {
	// LogLevel overrides Logging.Level when set (kept for parity with older configs).
	LogLevel string        `yaml:"log_level"`
	Logging  logger.Config `yaml:"logging"`

	Spells   SpellsConfig   `yaml:"spells"`
	Database DatabaseConfig `yaml:"database"`
	Stacking StackingConfig `yaml:"stacking"`
	Describe DescribeConfig `yaml:"describe"`
}

// Spell source kinds.
const (
	SourceFiles    = "files"
	SourceDatabase = "database"
)

// SpellsConfig describes where spell definitions come from.
type SpellsConfig struct {
	Source         string        `yaml:"source"` // "files" or "database"
	Files          []string      `yaml:"files"`
	MaxPlayerLevel int           `yaml:"max_player_level"`
	PollInterval   time.Duration `yaml:"poll_interval"` // index watcher poll (default: 250ms)
}

// DatabaseConfig holds spell store connection parameters.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // "sqlite" or "postgres"
	Path     string `yaml:"path"`   // sqlite file
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// StackingConfig tunes the stacking resolver.
type StackingConfig struct {
	Verbosity       string `yaml:"verbosity"` // "off", "trace", "echo"
	MaxTriggerDepth int    `yaml:"max_trigger_depth"`
	IgnoreTriggers  bool   `yaml:"ignore_triggers"`
}

// DescribeConfig tunes effect descriptions.
type DescribeConfig struct {
	Capacity     int `yaml:"capacity"`      // output bytes for DescribeAllEffects
	DefaultLevel int `yaml:"default_level"` // used when no character is active; 0 = max player level
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		Logging: logger.DefaultConfig(),
		Spells: SpellsConfig{
			Source:         SourceFiles,
			Files:          []string{"data/spells.yaml"},
			MaxPlayerLevel: 125,
			PollInterval:   250 * time.Millisecond,
		},
		Database: DatabaseConfig{
			Driver:   "sqlite",
			Path:     "data/spells.db",
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "spellcore",
			Password: "spellcore",
			DBName:   "spellcore",
			SSLMode:  "disable",
		},
		Stacking: StackingConfig{
			Verbosity:       "off",
			MaxTriggerDepth: 8,
		},
		Describe: DescribeConfig{
			Capacity: 2048,
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.LogLevel != "" {
		cfg.Logging.Level = cfg.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	switch c.Spells.Source {
	case SourceFiles, SourceDatabase:
	default:
		return fmt.Errorf("spells.source %q: must be %q or %q", c.Spells.Source, SourceFiles, SourceDatabase)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("database.driver %q: must be sqlite or postgres", c.Database.Driver)
	}
	if c.Spells.MaxPlayerLevel <= 0 {
		return fmt.Errorf("spells.max_player_level must be positive, got %d", c.Spells.MaxPlayerLevel)
	}
	if c.Stacking.MaxTriggerDepth <= 0 {
		return fmt.Errorf("stacking.max_trigger_depth must be positive, got %d", c.Stacking.MaxTriggerDepth)
	}
	return nil
}
