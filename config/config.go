package config

import (
	"os"
	"time"
)

// Config holds the process-wide settings the datastore consumes: token
// signing inputs and the directory holding the collection files.
type Config struct {
	JWTSecret []byte
	TokenTTL  time.Duration
	DataDir   string
}

// Load reads configuration from the environment with development fallbacks.
func Load() *Config {
	ttl := 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}
	return &Config{
		JWTSecret: []byte(getEnv("JWT_SECRET", "food_marketplace_super_secret_2024")),
		TokenTTL:  ttl,
		DataDir:   getEnv("DATA_DIR", "data"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
