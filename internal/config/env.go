package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first (missing file is fine); real environment
// variables win over .env entries, which godotenv guarantees by never
// overriding existing values.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("EDUHUB_SERVER_ADDR"); ok && v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v, ok := os.LookupEnv("EDUHUB_DATABASE_DSN"); ok && v != "" {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("EDUHUB_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
}
