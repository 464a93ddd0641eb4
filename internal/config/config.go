// Package config handles application configuration.
//
// Go Pattern: Configuration via environment variables with sensible
// defaults, held in an explicit struct. The Gemini API key is read once
// here and passed into the adapter at construction; no component reads
// the environment ad hoc, which keeps fake keys/clients easy in tests.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// Gemini settings
	GeminiAPIKey string
	GeminiModel  string
	ModelTimeout int // Seconds allowed for one generation call

	// Upload limits
	MaxUploadMB int64 // Multipart body cap for POST /
	MaxPDFPages int   // Leading pages read by the extractor

	// Result store (report regeneration)
	ResultTTLMinutes int
	ResultCapacity   int

	// Rate limiting (per client IP, requests per hour)
	RateLimit int

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible
// defaults. A local .env file is honored when present.
func Load() (*Config, error) {
	// A missing .env is fine; production sets real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ModelTimeout: getEnvInt("MODEL_TIMEOUT_SECONDS", 120),

		MaxUploadMB: int64(getEnvInt("MAX_UPLOAD_MB", 20)),
		MaxPDFPages: getEnvInt("MAX_PDF_PAGES", 5),

		ResultTTLMinutes: getEnvInt("RESULT_TTL_MINUTES", 60),
		ResultCapacity:   getEnvInt("RESULT_CAPACITY", 100),

		RateLimit: getEnvInt("RATE_LIMIT", 30),

		AllowedOrigins: []string{
			getEnv("CORS_ORIGIN", "http://localhost:8080"),
		},
	}

	return cfg, nil
}

// MaxUploadBytes returns the multipart body cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}
