package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries everything the process reads from the environment.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	Port           string
	AllowedOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int

	MigrationsDir string
}

// Load reads the configuration from environment variables with local-dev
// defaults. Call godotenv.Load before this in main.
func Load() Config {
	return Config{
		DBHost:         Getenv("DB_HOST", "localhost"),
		DBPort:         Getenv("DB_PORT", "5432"),
		DBUser:         Getenv("DB_USER", "hrms"),
		DBPassword:     Getenv("DB_PASSWORD", "hrms"),
		DBName:         Getenv("DB_NAME", "hrms_lite"),
		DBSSLMode:      Getenv("DB_SSLMODE", "disable"),
		Port:           Getenv("PORT", "8000"),
		AllowedOrigins: splitList(Getenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		RateLimitRPS:   getenvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getenvInt("RATE_LIMIT_BURST", 40),
		MigrationsDir:  Getenv("MIGRATIONS_DIR", "db/migrations"),
	}
}

// DatabaseURL formats the config as a postgres URL for golang-migrate.
func (c Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// Getenv returns the value of the variable or the fallback when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
