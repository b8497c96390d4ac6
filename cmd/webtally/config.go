package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/webtally/webtally/internal/model"
)

const (
	defaultFormat  = model.DefaultFormat
	defaultTimeout = model.DefaultFetchTimeout
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
// No setting affects classification behavior; they only select the source,
// the output format, and diagnostics.
type appConfig struct {
	URL     string        `mapstructure:"url"`
	Format  string        `mapstructure:"format"`
	Timeout time.Duration `mapstructure:"timeout"`
	Verbose bool          `mapstructure:"verbose"`
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	v := viper.New()
	v.SetEnvPrefix("WEBTALLY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("url", "")
	v.SetDefault("format", defaultFormat)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("verbose", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "webtally"))
		v.SetConfigName("config")
		v.SetConfigType("yml")
		// The default config file is optional.
		_ = v.ReadInConfig()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Format != "text" && cfg.Format != "json" {
		return cfg, fmt.Errorf("invalid format %q (want text or json)", cfg.Format)
	}
	return cfg, nil
}
