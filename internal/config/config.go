package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN         string
	JWTSecret           string
	StripeSecretKey     string
	StripeWebhookSecret string
	RedisURL            string
	WebhookDedupTTL     time.Duration
	LocalAddr           string
	GoalsRequireAuth    bool
}

// LoadDotEnv populates the environment from a .env file when one exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		Logger.Debug("No .env file found, using environment variables")
	}
}

func Load() Config {
	return Config{
		DatabaseDSN:         getEnv("DATABASE_DSN", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		WebhookDedupTTL:     getDurationEnv("WEBHOOK_DEDUP_TTL", 24*time.Hour),
		LocalAddr:           getEnv("LOCAL_ADDR", ""),
		GoalsRequireAuth:    getBoolEnv("GOALS_REQUIRE_AUTH", false),
	}
}

// LoadCheckout is Load for the checkout function. It panics without a Stripe secret key.
func LoadCheckout() Config {
	cfg := Load()
	if cfg.StripeSecretKey == "" {
		panic("STRIPE_SECRET_KEY is not set in environment variables")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
