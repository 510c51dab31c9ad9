package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// Config holds every knob of the checkout service, loaded from the
// environment (main loads .env through godotenv/autoload first).
type Config struct {
	Port string

	AccessToken     string
	PublicBaseURL   string
	NotificationURL string
	SuccessURL      string
	PendingURL      string
	FailureURL      string
	CurrencyID      string
	RequestTimeout  time.Duration

	PreferenceExpirationMinutes int

	WebhookSecret            string
	ValidateWebhookSignature bool

	OrdersTable      string
	WebhookLogsTable string

	GatewayMock bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		AccessToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		NotificationURL: os.Getenv("WEBHOOK_NOTIFICATION_URL"),
		SuccessURL:      os.Getenv("CHECKOUT_SUCCESS_URL"),
		PendingURL:      os.Getenv("CHECKOUT_PENDING_URL"),
		FailureURL:      os.Getenv("CHECKOUT_FAILURE_URL"),
		CurrencyID:      getEnv("CHECKOUT_CURRENCY", "BRL"),
		RequestTimeout:  time.Duration(getEnvAsInt("MERCADOPAGO_TIMEOUT_SECONDS", 10)) * time.Second,

		PreferenceExpirationMinutes: getEnvAsInt("PREFERENCE_EXPIRATION_MINUTES", 20),

		WebhookSecret:            os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),
		ValidateWebhookSignature: getEnvAsBool("VALIDATE_WEBHOOK_SIGNATURE", false),

		OrdersTable:      getEnv("ORDERS_TABLE", "orders"),
		WebhookLogsTable: getEnv("WEBHOOK_LOGS_TABLE", "webhook_logs"),

		GatewayMock: getEnvAsBool("PAYMENT_GATEWAY_MOCK", false),
	}

	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if cfg.NotificationURL == "" {
		cfg.NotificationURL = base + "/v1/webhooks/mercadopago"
	}
	if cfg.SuccessURL == "" {
		cfg.SuccessURL = base + "/checkout/success"
	}
	if cfg.PendingURL == "" {
		cfg.PendingURL = base + "/checkout/pending"
	}
	if cfg.FailureURL == "" {
		cfg.FailureURL = base + "/checkout/failure"
	}

	if cfg.PreferenceExpirationMinutes <= 0 {
		cfg.PreferenceExpirationMinutes = 20
	}

	if cfg.AccessToken == "" && !cfg.GatewayMock {
		return nil, ErrMissingAccessToken
	}

	return cfg, nil
}

func (c *Config) PreferenceExpirationWindow() time.Duration {
	return time.Duration(c.PreferenceExpirationMinutes) * time.Minute
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvAsBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
