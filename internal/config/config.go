// Package config loads runtime settings for the admin client.
//
// Sources are overlaid in order, later ones winning:
//
//	defaults -> config file (optional, -c/-config) and JOBPORT_* env -> flags
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the admin client.
type Config struct {
	// BaseURL is the root of the job-board REST API, including any path
	// prefix (e.g. https://api.jobport.example/api/v1).
	BaseURL string `mapstructure:"base_url"`

	// TokenFile is where the bearer token is persisted between runs.
	TokenFile string `mapstructure:"token_file"`

	// RequestTimeout bounds a single HTTP request. Zero means no
	// client-side timeout: a hung request hangs until the transport
	// gives up.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".jobport", "token")
}

// Load builds a Config from defaults, an optional config file, JOBPORT_*
// environment variables and command-line flags.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", "http://localhost:8080/api/v1")
	v.SetDefault("token_file", defaultTokenFile())
	v.SetDefault("request_timeout", time.Duration(0))

	v.SetEnvPrefix("JOBPORT")
	v.AutomaticEnv()
	for _, key := range []string{"base_url", "token_file", "request_timeout"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if file := configFileFlag(); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	parseFlags(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return errors.New("config: base URL must not be empty")
	}
	if c.TokenFile == "" {
		return errors.New("config: token file must not be empty")
	}
	return nil
}
