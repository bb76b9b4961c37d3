package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration
type Config struct {
	AppEnv         string
	AppPort        string
	AppHost        string
	AllowedOrigins string

	Database       DatabaseConfig
	JWT            JWTConfig
	Cookie         CookieConfig
	Gemini         GeminiConfig
	Recommendation RecommendationConfig

	SeedOnStart bool
}

// DatabaseConfig holds MySQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	AccessSecret        string
	RefreshSecret       string
	AccessExpiryMinutes int
	RefreshExpiryDays   int
}

// CookieConfig holds auth cookie settings
type CookieConfig struct {
	Domain   string
	Secure   bool
	SameSite string
}

// GeminiConfig holds the assistant model settings
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RecommendationConfig tunes the scoring engine and the nightly sweep
type RecommendationConfig struct {
	EligibleThreshold float64
	SweepEnabled      bool
	SweepSchedule     string
}

// LoadConfig reads configuration from .env and the environment. The APP_ENV
// value selects between DEV_ and PROD_ prefixed variables.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	}

	appEnv := getEnv("APP_ENV", "development")
	prefix := "DEV_"
	if appEnv == "production" {
		prefix = "PROD_"
	}

	cfg := &Config{
		AppEnv:         appEnv,
		AppPort:        getEnv("APP_PORT", "8080"),
		AppHost:        getEnv("APP_HOST", "0.0.0.0"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		Database: DatabaseConfig{
			Host:     getEnv(prefix+"DB_HOST", "localhost"),
			Port:     getEnv(prefix+"DB_PORT", "3306"),
			User:     getEnv(prefix+"DB_USER", "root"),
			Password: getEnv(prefix+"DB_PASSWORD", ""),
			Name:     getEnv(prefix+"DB_NAME", "sevasetu"),
		},
		JWT: JWTConfig{
			AccessSecret:        getEnv("JWT_ACCESS_SECRET", ""),
			RefreshSecret:       getEnv("JWT_REFRESH_SECRET", ""),
			AccessExpiryMinutes: getEnvInt("JWT_ACCESS_EXPIRY_MINUTES", 15),
			RefreshExpiryDays:   getEnvInt("JWT_REFRESH_EXPIRY_DAYS", 7),
		},
		Cookie: CookieConfig{
			Domain:   getEnv("COOKIE_DOMAIN", ""),
			Secure:   appEnv == "production",
			SameSite: getEnv("COOKIE_SAMESITE", "Lax"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Recommendation: RecommendationConfig{
			EligibleThreshold: getEnvFloat("RECOMMENDATION_ELIGIBLE_THRESHOLD", 50),
			SweepEnabled:      getEnvBool("RECOMMENDATION_SWEEP_ENABLED", true),
			SweepSchedule:     getEnv("RECOMMENDATION_SWEEP_SCHEDULE", "30 2 * * *"),
		},
		SeedOnStart: getEnvBool("SEED_ON_START", true),
	}

	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set")
	}

	return cfg, nil
}

// IsDev reports whether the app runs in development mode
func (c *Config) IsDev() bool {
	return c.AppEnv != "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
