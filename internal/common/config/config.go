package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	// OutputRoot holds one task directory per extraction run.
	OutputRoot string
	// DatabasePath is the sqlite run registry location.
	DatabasePath string
	// DstCRS is the default destination reference system for uploads
	// that request reprojection.
	DstCRS string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 30),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 30),
		OutputRoot:   getEnv("OUTPUT_DIR", "./outputs"),
		DatabasePath: getEnv("DB_PATH", "./data/runs.db"),
		DstCRS:       getEnv("DST_CRS", "EPSG:4326"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
