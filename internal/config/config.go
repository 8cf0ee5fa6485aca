package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Salon backend
	BackendURL            string
	BackendTimeout        time.Duration
	BackendMaxRetries     int
	BackendRetryBaseDelay time.Duration

	// Redis (sessions); empty keeps sessions in memory
	RedisURL string

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration

	// CORS
	AllowedOrigins []string

	// Booking lifecycle
	BookingCancelRoles []string

	// Logging
	LogLevel string
	LogFile  string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Server
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("ENV", "development"),

		// Salon backend
		BackendURL:            getEnv("BACKEND_URL", "http://localhost:8080/api"),
		BackendTimeout:        parseDuration(getEnv("BACKEND_TIMEOUT", "30s"), 30*time.Second),
		BackendMaxRetries:     parseInt(getEnv("BACKEND_MAX_RETRIES", "2"), 2),
		BackendRetryBaseDelay: parseDuration(getEnv("BACKEND_RETRY_BASE_DELAY", "1s"), time.Second),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// Sessions
		SessionSecret: getEnv("SESSION_SECRET", "super-secret-key-change-me"),
		SessionTTL:    parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),

		// Booking lifecycle
		BookingCancelRoles: parseStringSlice(getEnv("BOOKING_CANCEL_ROLES", "")),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
		LogFile:  getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	result := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
