// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	API     APIConfig
	Storage StorageConfig
	Session SessionConfig
	Events  EventsConfig
	Log     LogConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// APIConfig points at the restaurant REST API.
type APIConfig struct {
	BaseURL string
}

// StorageConfig selects where client session entries are kept.
// Driver is "postgres", "sqlite" or "memory".
type StorageConfig struct {
	Driver     string
	DSN        string // explicit DSN wins over the discrete fields
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
	Migrations bool
}

// SessionConfig configures the client cookie and the session store.
type SessionConfig struct {
	Secret       string
	Namespace    string
	RestoreWait  time.Duration
	SecureCookie bool
}

// EventsConfig enables the RabbitMQ publisher when URL is set.
type EventsConfig struct {
	URL      string
	Exchange string
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev bool
}

// PostgresDSN returns the connection string in key=value format, or the
// explicit DSN when one was given.
func (s StorageConfig) PostgresDSN() string {
	if s.DSN != "" {
		return s.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.DBName, s.SSLMode,
	)
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3333"),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			DSN:        getEnv("DATABASE_DSN", ""),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "smartorder"),
			Password:   getEnv("DB_PASSWORD", "smartorder"),
			DBName:     getEnv("DB_NAME", "smartorder"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			Migrations: getEnvBool("MIGRATIONS", false),
		},
		Session: SessionConfig{
			Secret:       getEnv("SESSION_SECRET", "devsessionsecret"),
			Namespace:    getEnv("STORAGE_NAMESPACE", "@smart-order"),
			RestoreWait:  getEnvDuration("RESTORE_WAIT", 2*time.Second),
			SecureCookie: getEnvBool("SECURE_COOKIES", false),
		},
		Events: EventsConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("EVENTS_EXCHANGE", "smart-order.events"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		App: AppConfig{
			Dev: getEnvBool("DEV", false),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}

// getEnvDuration parses a Go duration ("2s", "500ms"); a bare integer is
// taken as milliseconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
