package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

type Config struct {
	Backend       string
	SQLitePath    string
	DatabaseURL   string
	AutoMigrate   bool
	HTTPAddr      string
	Validation    models.Strictness
	DisplayLocale string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARN: Failed to read .env file: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables with defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		Backend:       getEnv("BACKEND", BackendLocal),
		SQLitePath:    getEnv("SQLITE_PATH", "./magazyn.db"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DisplayLocale: getEnv("DISPLAY_LOCALE", "pl"),
	}

	switch cfg.Backend {
	case BackendLocal:
		cfg.Validation = models.Strict
	case BackendRemote:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required for the remote backend")
		}
		cfg.Validation = models.Lenient
	default:
		return Config{}, fmt.Errorf("unknown BACKEND %q (want %q or %q)", cfg.Backend, BackendLocal, BackendRemote)
	}

	if v := os.Getenv("VALIDATION"); v != "" {
		s, err := models.ParseStrictness(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Validation = s
	}

	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}
	cfg.AutoMigrate = autoMigrate

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
