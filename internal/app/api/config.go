package api

import (
	"os"
	"strings"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port           string
	PostgresDSN    string
	MigrateOnStart bool
}

// LoadConfig reads environment variables and applies defaults. An empty
// POSTGRES_DSN selects the in-memory repositories.
func LoadConfig() Config {
	return Config{
		Port:           envDefault("PORT", "8080"),
		PostgresDSN:    strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		MigrateOnStart: isTruthy(envDefault("POSTGRES_AUTO_MIGRATE", "true")),
	}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
