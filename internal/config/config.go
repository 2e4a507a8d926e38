package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseDSN      string
	Port             string
	SiteBaseURL      string
	PaymentBaseURL   string
	PaymentAPIKey    string
	RateLimitLeads   RateLimitConfig
	CategoryCacheTTL time.Duration
	SitemapCacheTTL  time.Duration
	MediaTimeout     time.Duration
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseDSN:      os.Getenv("DATABASE_DSN"),
		Port:             getEnv("PORT", "8080"),
		SiteBaseURL:      strings.TrimRight(getEnv("SITE_BASE_URL", "http://localhost:8080"), "/"),
		PaymentBaseURL:   getEnv("PAYMENT_BASE_URL", "https://payments.example.com"),
		PaymentAPIKey:    os.Getenv("PAYMENT_API_KEY"),
		CategoryCacheTTL: parseDuration(getEnv("CATEGORY_CACHE_TTL", "5m")),
		SitemapCacheTTL:  parseDuration(getEnv("SITEMAP_CACHE_TTL", "10m")),
		MediaTimeout:     parseDuration(getEnv("MEDIA_PROXY_TIMEOUT", "15s")),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_LEADS", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_LEADS value: %w", err)
	}
	cfg.RateLimitLeads = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}
