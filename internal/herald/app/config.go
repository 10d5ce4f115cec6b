package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer        string // Issuer claim for access tokens (default: herald)
	SecretFile    string // Path to the HS256 signing secret file (default: ./herald.secret)
	Secret        string // Optional: signing secret from env, overrides SecretFile
	DatabaseFile  string // Path to SQLite database file (default: ./herald.db)
	PepperFile    string // Path to password hashing pepper file (default: ./pepper)
	AdminEmail    string // Optional: seed admin email on an empty database
	AdminPassword string // Optional: seed admin password

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	NotificationTTL      time.Duration // Retention for delivered notifications (default: 90 days)
}

func LoadConfig() Config {
	return Config{
		Issuer:        getEnvOrDefault("HERALD_ISSUER", "herald"),
		SecretFile:    getEnvOrDefault("HERALD_SECRET_FILE", "herald.secret"),
		Secret:        os.Getenv("HERALD_JWT_SECRET"),
		DatabaseFile:  getEnvOrDefault("HERALD_DATABASE_FILE", "herald.db"),
		PepperFile:    getEnvOrDefault("HERALD_PEPPER_FILE", "pepper"),
		AdminEmail:    os.Getenv("HERALD_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("HERALD_ADMIN_PASSWORD"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		NotificationTTL:      getEnvDurationOrDefault("HERALD_NOTIFICATION_TTL", 90*24*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
