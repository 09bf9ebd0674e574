package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates application configuration loaded from environment
// variables.
type Config struct {
	Env               string
	HTTPAddr          string
	CatalogBaseURL    string
	BookingAPIURL     string
	ContactWhatsApp   string
	MinNights         int
	UpstreamTimeout   time.Duration
	SessionTTL        time.Duration
	SweepInterval     time.Duration
	KafkaBrokers      []string
	KafkaTopicPrefix  string
	SlideshowInterval time.Duration
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		CatalogBaseURL:   strings.TrimRight(os.Getenv("CATALOG_BASE_URL"), "/"),
		BookingAPIURL:    os.Getenv("BOOKING_API_URL"),
		ContactWhatsApp:  os.Getenv("CONTACT_WHATSAPP"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", "vanbook."),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	minNights, err := parseIntEnv("MIN_NIGHTS", 3)
	if err != nil {
		return Config{}, err
	}
	cfg.MinNights = minNights

	upstreamTimeout, err := parseDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.UpstreamTimeout = upstreamTimeout

	sessionTTL, err := parseDurationEnv("SESSION_TTL", 2*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionTTL = sessionTTL

	sweep, err := parseDurationEnv("SESSION_SWEEP_INTERVAL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.SweepInterval = sweep

	slideshow, err := parseDurationEnv("SLIDESHOW_INTERVAL", 2*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.SlideshowInterval = slideshow

	if cfg.CatalogBaseURL == "" {
		return Config{}, fmt.Errorf("CATALOG_BASE_URL is required")
	}
	if cfg.BookingAPIURL == "" {
		cfg.BookingAPIURL = cfg.CatalogBaseURL + "/api/book"
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %w", key, err)
	}
	return n, nil
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
