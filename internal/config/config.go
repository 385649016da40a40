package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/summary"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, parsed from the environment.
// A .env file in the working directory is loaded first when present.
type Config struct {
	// DBPath is the SQLite file; empty means ~/.studytimer/studytimer.db.
	DBPath string `env:"STUDYTIMER_DB"`

	// UserID selects whose records commands operate on.
	UserID int64 `env:"STUDYTIMER_USER_ID" envDefault:"1"`

	// Timezone is the IANA zone all calendar-day math runs in.
	Timezone string `env:"STUDYTIMER_TZ" envDefault:"Asia/Tokyo"`

	Summary summary.Config
}

// Load reads configuration from .env and the process environment.
func Load() (Config, error) {
	// A missing .env is fine; explicit environment always wins.
	_ = godotenv.Load(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".studytimer", "studytimer.db")
	}

	return cfg, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
