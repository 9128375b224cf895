package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvAdzunaAppID  = "ADZUNA_APP_ID"
	EnvAdzunaAppKey = "ADZUNA_APP_KEY"
)

// Adzuna holds the provider credentials. Both values are read-only after Load.
type Adzuna struct {
	AppID  string
	AppKey string
}

// MissingKeys lists the environment keys whose values are empty
func (a Adzuna) MissingKeys() []string {
	var missing []string
	if a.AppID == "" {
		missing = append(missing, EnvAdzunaAppID)
	}
	if a.AppKey == "" {
		missing = append(missing, EnvAdzunaAppKey)
	}
	return missing
}

// Configured reports whether both credentials are present
func (a Adzuna) Configured() bool {
	return len(a.MissingKeys()) == 0
}

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	Adzuna   Adzuna
}

// Load populates config from environment variables, after merging an
// optional .env file (ENV_FILE, default ".env"). Variables already set in
// the process environment win over the file.
func Load() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	explicit := envFile != ""
	if !explicit {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	// Missing credentials are reported per search, not at startup.
	cfg.Adzuna.AppID = os.Getenv(EnvAdzunaAppID)
	cfg.Adzuna.AppKey = os.Getenv(EnvAdzunaAppKey)

	return cfg, nil
}
