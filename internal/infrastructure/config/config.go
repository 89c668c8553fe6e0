package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is constructed once at
// startup and passed into each component; nothing reads ambient globals.
type Config struct {
	App  AppConfig
	Data DataConfig
	Log  LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
}

// DataConfig resolves where the persisted documents live. Everything is
// derived from one base directory so the whole data set can be moved or
// backed up as a unit.
type DataConfig struct {
	BaseDir   string
	ImportDir string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with POS_ prefix (e.g., POS_DATA_BASE_DIR)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
		},
		Data: DataConfig{
			BaseDir:   v.GetString("data.base_dir"),
			ImportDir: v.GetString("data.import_dir"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "pocket-pos"
	}
	if cfg.Data.BaseDir == "" {
		cfg.Data.BaseDir = "data"
	}
	if cfg.Data.ImportDir == "" {
		cfg.Data.ImportDir = filepath.Join(cfg.Data.BaseDir, "imports")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be 'json' or 'console', got %q", c.Log.Format)
	}
	return nil
}

// EnsureDirs creates the base and import directories if they do not exist.
func (d *DataConfig) EnsureDirs() error {
	if err := os.MkdirAll(d.BaseDir, 0755); err != nil {
		return fmt.Errorf("create base dir: %w", err)
	}
	if err := os.MkdirAll(d.ImportDir, 0755); err != nil {
		return fmt.Errorf("create import dir: %w", err)
	}
	return nil
}

// InventoryPath returns the path of the inventory document.
func (d *DataConfig) InventoryPath() string {
	return filepath.Join(d.BaseDir, "inventory.json")
}

// SalesPath returns the path of the sales log document.
func (d *DataConfig) SalesPath() string {
	return filepath.Join(d.BaseDir, "sales_log.json")
}

// FlagsPath returns the path of the feature-flags document.
func (d *DataConfig) FlagsPath() string {
	return filepath.Join(d.BaseDir, "upgrades.json")
}

// LicensePath returns the path where a dropped-in license file is expected.
func (d *DataConfig) LicensePath() string {
	return filepath.Join(d.ImportDir, "license.txt")
}
