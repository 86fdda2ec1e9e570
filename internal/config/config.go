// Package config loads application configuration from environment variables.
// A local .env file is loaded first when present, so development machines can
// keep their settings out of the shell profile.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the service.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// Database settings. Driver is one of "sqlite", "postgres", "mysql".
	DBDriver   string
	DBPath     string // sqlite file path
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	// RunMigrations enables GORM AutoMigrate at startup.
	RunMigrations bool

	// Redis settings. Redis is optional; an empty host disables it.
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// JWTSecret signs API tokens. JWTExpiration bounds their lifetime.
	JWTSecret     string
	JWTExpiration time.Duration

	// SessionTTL bounds browser session lifetime.
	SessionTTL time.Duration

	// SMTP settings for the contact form mailer.
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	AdminEmail   string

	// ModelPath is the trained model artifact, DatasetPath the generated CSV.
	ModelPath   string
	DatasetPath string
}

// Load reads the configuration from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err)
	}

	return &Config{
		Port:          getenv("PORT", "8080"),
		DBDriver:      getenv("DB_DRIVER", "sqlite"),
		DBPath:        getenv("DB_PATH", "users.db"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: getenvDuration("JWT_EXPIRATION", 15*time.Minute),
		SessionTTL:    getenvDuration("SESSION_TTL", 24*time.Hour),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getenv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		ModelPath:     getenv("MODEL_PATH", "car_model.json"),
		DatasetPath:   getenv("DATASET_PATH", "enhanced_car_dataset.csv"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// Plain integers are treated as seconds.
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	slog.Warn("invalid duration, using default", "key", key, "value", v)
	return fallback
}
