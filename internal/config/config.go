package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	Port         int    `mapstructure:"PORT"`
	Env          string `mapstructure:"APP_ENV"` // development | production
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// DatabaseURLSet is true when DATABASE_URL came from the environment
	// rather than the built-in default.
	DatabaseURLSet bool `mapstructure:"-"`
}

const DefaultDatabaseURL = "mongodb://localhost:27017"

// Load merges an optional .env file into the process environment and reads
// the typed config with defaults.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", 8000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", DefaultDatabaseURL)
	v.SetDefault("DATABASE_NAME", "cafeteria")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	url, ok := os.LookupEnv("DATABASE_URL")
	cfg.DatabaseURLSet = ok && strings.TrimSpace(url) != ""
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
