package config

import (
	"os"
)

type Config struct {
	Addr           string
	StorageBackend string
	LocalStorePath string
	TicketsFile    string
	SessionSecret  string
	GinMode        string
}

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendLocal = "local"
	BackendFile  = "file"
)

func Load() *Config {
	return &Config{
		Addr:           getEnv("ADDR", ":8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendLocal),
		LocalStorePath: getEnv("LOCAL_STORE_PATH", "sprintboard.db"),
		TicketsFile:    getEnv("TICKETS_FILE", "tickets.json"),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:        getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
