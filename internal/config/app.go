package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort        = "5002"
	defaultTokenTTL    = time.Hour
	defaultCurrency    = "usd"
	defaultLatestLimit = 6
)

// AppConfig holds the non-database runtime settings.
type AppConfig struct {
	Port            string
	TokenSecret     string
	TokenTTL        time.Duration
	RedisAddr       string
	RedisPassword   string
	StripeSecretKey string
	Currency        string
	LatestLimit     int64
}

// LoadAppConfig reads AppConfig from the environment. ACCESS_TOKEN_SECRET is required.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:            os.Getenv("PORT"),
		TokenSecret:     os.Getenv("ACCESS_TOKEN_SECRET"),
		TokenTTL:        defaultTokenTTL,
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:        os.Getenv("PAYMENT_CURRENCY"),
		LatestLimit:     defaultLatestLimit,
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET not set in environment")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}

	if raw := os.Getenv("ACCESS_TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL %q", raw)
		}
		cfg.TokenTTL = ttl
	}

	if raw := os.Getenv("LATEST_SURVEY_LIMIT"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid LATEST_SURVEY_LIMIT %q", raw)
		}
		cfg.LatestLimit = n
	}

	return cfg, nil
}
