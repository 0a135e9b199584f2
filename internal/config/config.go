package config

import (
	"log/slog"
	"os"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

// Config holds process configuration, populated from the environment.
type Config struct {
	Port         string
	Env          string
	DatabaseDSN  string
	JWTSecret    string
	JWTExpiry    time.Duration
	GroqAPIKey   string
	ElevenAPIKey string
}

// Load reads configuration from environment variables. Session tokens are
// always valid for 24 hours.
func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/puresoul?parseTime=true"),
		JWTSecret:    getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:    24 * time.Hour,
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		ElevenAPIKey: os.Getenv("ELEVEN_API_KEY"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}
	if cfg.GroqAPIKey == "" {
		slog.Warn("GROQ_API_KEY is not set, chat responses will fail")
	}
	if cfg.ElevenAPIKey == "" {
		slog.Warn("ELEVEN_API_KEY is not set, speech synthesis will fail")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
