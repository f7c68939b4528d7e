package config

import (
	"os"
	"strconv"
	"strings"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendJSONFile = "jsonfile"
	BackendSQLite   = "sqlite"
)

// Config holds the application configuration. It is built once at startup and
// never mutated afterwards; the signing secret and file paths are handed to
// the components that need them instead of being read from the environment
// ad hoc.
type Config struct {
	ServerPort     int
	AppEnv         string // "development" or "production"
	JWTSecret      string
	DataDir        string // Base path for the JSON collection files
	StorageBackend string // "jsonfile" or "sqlite"
	DatabasePath   string // SQLite file, used only with the sqlite backend
	BackupPath     string
	BackupCron     string // Standard cron expression; empty disables backups
	AllowedOrigins []string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "5000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	origins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		ServerPort:     port,
		AppEnv:         getEnv("APP_ENV", "development"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
		DataDir:        getEnv("DATA_DIR", "./db"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendJSONFile),
		DatabasePath:   getEnv("DATABASE_PATH", "./blog.db"),
		BackupPath:     getEnv("BACKUP_PATH", "./backups"),
		BackupCron:     getEnv("BACKUP_CRON", ""),
		AllowedOrigins: origins,
	}, nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
