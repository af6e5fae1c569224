// Package config loads settings from an optional TOML file and EXPLORE_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings. The default ":memory:" keeps all
// state inside the process.
type DatabaseConfig struct {
	Path string
}

// SessionConfig controls whether navigation state survives a restart.
type SessionConfig struct {
	Persist bool
}

// CatalogConfig points at an alternate TOML dataset. Empty means the
// built-in Boston tour.
type CatalogConfig struct {
	File string
}

// LogConfig controls transition logging.
type LogConfig struct {
	Transitions bool
	File        string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Start is the route the tour opens on, e.g. "list/Parks".
	Start     string
	AltScreen bool `mapstructure:"alt_screen"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// EXPLORE_, with dots replaced by underscores (EXPLORE_SESSION_PERSIST).
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("EXPLORE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "explore"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EXPLORE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", ":memory:")
	v.SetDefault("session.persist", false)
	v.SetDefault("catalog.file", "")
	v.SetDefault("log.transitions", false)
	v.SetDefault("log.file", "")
	v.SetDefault("ui.start", "home")
	v.SetDefault("ui.alt_screen", true)
}

// PersistentDBPath is the database used when session.persist is on and
// database.path was left at its in-memory default.
func PersistentDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".explore", "explore.db"), nil
}
