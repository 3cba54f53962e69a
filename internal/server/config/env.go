package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the environment. An optional .env file in
// the working directory is loaded first; a missing file is not an error.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TRIPDIARY_ADDR"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("TRIPDIARY_DATA_DIR"); v != "" {
		config.DataDir = v
	}
	if v := os.Getenv("TRIPDIARY_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TRIPDIARY_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
}
