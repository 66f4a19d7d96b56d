package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is everything the terminal client needs to run. Values come from an
// optional posctl.yaml, overridden by SEAPOS_* environment variables (a .env
// file is loaded by main before this runs).
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Store     StoreConfig     `mapstructure:"store"`
	Session   SessionConfig   `mapstructure:"session"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Language  string          `mapstructure:"language"`
	Env       string          `mapstructure:"env"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type StoreConfig struct {
	// DSN selects the terminal store backend: empty means an embedded sqlite
	// file under StateDir, postgres:// points shared terminals at one store.
	DSN      string `mapstructure:"dsn"`
	StateDir string `mapstructure:"state_dir"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type DashboardConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// Load reads posctl.yaml (from path if given, else the working directory and
// ~/.config/seapos) plus SEAPOS_* env overrides. A missing file is fine; the
// defaults mirror the shop's dev setup.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:8003")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.state_dir", "")
	v.SetDefault("session.ttl", 12*time.Hour)
	v.SetDefault("dashboard.poll_interval", 30*time.Second)
	v.SetDefault("language", "vi")
	v.SetDefault("env", "production")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("posctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/seapos")
	}
	v.SetEnvPrefix("SEAPOS")
	// Nested keys need the replacer: SEAPOS_API_BASE_URL -> api.base_url.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// no default file is fine, anything else is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
