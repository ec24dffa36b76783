package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// App is the web server configuration. Values come from an optional
// salespulse.yaml, overridden by environment variables. A missing or empty
// base URL is not fatal here: the dashboard starts and every fetch fails
// into the error state instead.
type App struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
}

func (a App) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// LoadApp reads the config file at path (skipped when path is empty) and
// applies SALESPULSE_BASE_URL, SALESPULSE_TIMEOUT_SECONDS, SERVER_HOST and
// SERVER_PORT overrides.
func LoadApp(path string) (*App, error) {
	cfg := App{
		Host: "localhost",
		Port: "8080",
	}

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if base := os.Getenv("SALESPULSE_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	if timeout := os.Getenv("SALESPULSE_TIMEOUT_SECONDS"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil {
			cfg.TimeoutSeconds = seconds
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}

	return &cfg, nil
}
