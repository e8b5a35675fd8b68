package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	SaveDir      string
	HistoryDB    string
	LogLevel     string
	LogFile      string
	Color        string
	HistoryLimit int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	// HISTORY_DB and LOG_FILE default to files inside SAVE_DIR.
	saveDir := envOr("SAVE_DIR", "saves")
	return Config{
		SaveDir:      saveDir,
		HistoryDB:    envOr("HISTORY_DB", filepath.Join(saveDir, "history.db")),
		LogLevel:     envOr("LOG_LEVEL", "INFO"),
		LogFile:      envOr("LOG_FILE", filepath.Join(saveDir, "rpsarena.log")),
		Color:        envOr("COLOR", ColorAuto),
		HistoryLimit: envIntOr("HISTORY_LIMIT", 10),
	}
}

// Validate checks every field and reports all problems at once. LogLevel and
// Color are normalised in place.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.SaveDir) == "" {
		errs = append(errs, errors.New("SAVE_DIR cannot be empty"))
	}

	level := strings.ToUpper(strings.TrimSpace(c.LogLevel))
	switch level {
	case "DEBUG", "INFO", "WARN", "ERROR":
		c.LogLevel = level
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}

	color := strings.ToLower(strings.TrimSpace(c.Color))
	switch color {
	case ColorAuto, ColorAlways, ColorNever:
		c.Color = color
	default:
		errs = append(errs, fmt.Errorf("COLOR must be one of auto, always, never (got %q)", c.Color))
	}

	if c.HistoryLimit < 1 {
		errs = append(errs, fmt.Errorf("HISTORY_LIMIT must be at least 1 (got %d)", c.HistoryLimit))
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
