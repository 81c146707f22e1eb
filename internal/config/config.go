// Package config reads runtime settings from the environment, with an
// optional .env file loaded first.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	Addr      string
	Log       bool
	AdvisorID string
	// TimeZone names the IANA zone that business-day boundaries use.
	TimeZone string
	GinMode  string
}

// Default returns the settings used when nothing is configured. The
// database lives under the user's home directory when it can be found.
func Default() Config {
	dbPath := filepath.Join(".talentboard", "talentboard.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".talentboard", "talentboard.db")
	}
	return Config{
		DBPath:   dbPath,
		Addr:     ":8080",
		TimeZone: "UTC",
		GinMode:  "release",
	}
}

// Load applies .env files (default ".env") and then environment variables
// over Default. A missing .env file is not an error; a malformed one is.
// Invalid values keep the default.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

// FromEnv reads the TALENTBOARD_* variables without touching .env files.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("TALENTBOARD_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TALENTBOARD_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TALENTBOARD_LOG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log = b
		}
	}
	if v := os.Getenv("TALENTBOARD_ADVISOR"); v != "" {
		cfg.AdvisorID = v
	}
	if v := os.Getenv("TALENTBOARD_TZ"); v != "" {
		if _, err := time.LoadLocation(v); err == nil {
			cfg.TimeZone = v
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	return cfg
}

// Location resolves TimeZone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock returns a function reporting the current time in Location.
func (c Config) Clock() func() time.Time {
	loc := c.Location()
	return func() time.Time { return time.Now().In(loc) }
}
