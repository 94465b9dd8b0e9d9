package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Configuration
	Env        string
	Port       string
	CORSOrigin string

	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret string
	JWTExpiry time.Duration

	// Metadata Provider Configuration
	MovieAPIKey     string
	MovieAPIBaseURL string
}

// LoadConfig loads the configuration from environment variables. A .env file
// in the working directory is honored when present. MONGO_URI, JWT_SECRET and
// MOVIE_API_KEY have no fallback values: the process refuses to start without
// them.
func LoadConfig() (*Config, error) {
	// Best effort; deployments usually inject plain environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		Env:        getEnvOrDefault("GO_ENV", "development"),
		Port:       getEnvOrDefault("PORT", "8080"),
		CORSOrigin: getEnvOrDefault("CORS_ORIGIN", "http://localhost:5173"),

		MongoURI: os.Getenv("MONGO_URI"),
		DBName:   getEnvOrDefault("DB_NAME", "moviecatalog"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		MovieAPIKey:     os.Getenv("MOVIE_API_KEY"),
		MovieAPIBaseURL: getEnvOrDefault("MOVIE_API_BASE_URL", "https://www.omdbapi.com/"),
	}

	expiryHours, err := strconv.Atoi(getEnvOrDefault("JWT_EXPIRY_HOURS", "72"))
	if err != nil || expiryHours <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %q", os.Getenv("JWT_EXPIRY_HOURS"))
	}
	cfg.JWTExpiry = time.Duration(expiryHours) * time.Hour

	var missing []string
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.MovieAPIKey == "" {
		missing = append(missing, "MOVIE_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
