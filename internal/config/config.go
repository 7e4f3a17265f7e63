package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	ServerPort       string
	JWTSecret        string
	GinMode          string
	LogLevel         string
	CORSAllowOrigins []string
}

func Load() *Config {
	// Missing .env is fine; everything falls back to env vars and defaults.
	_ = godotenv.Load()

	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "relief"),
		DBPassword:       getEnv("DB_PASSWORD", "relief"),
		DBName:           getEnv("DB_NAME", "relief_coordination"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		ServerPort:       getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "default-secret-key-change-me"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins: splitEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
