package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	DatabaseURL string
	HTTPAddr    string

	GatewayBaseURL string
	GatewayAPIKey  string
	GatewayTimeout time.Duration

	DefaultCountryCode string
	GatewaySuffix      string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	PushSubscriber  string // contact URI sent to push services, e.g. mailto:ops@example.com

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	TelegramToken string
	AdminChatID   int64

	CronSpecDailyReminders string
	CronSpecGatewayStatus  string
	CronSecret             string

	CountAnyChannel bool // when true, push/email-only delivery counts as a success

	LogLevel    string
	Environment string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.HTTPAddr = getOrDefault("HTTP_ADDR", ":8080")

	cfg.GatewayBaseURL = strings.TrimRight(os.Getenv("WHATSAPP_GATEWAY_URL"), "/")
	if cfg.GatewayBaseURL == "" {
		return nil, fmt.Errorf("WHATSAPP_GATEWAY_URL is not set")
	}
	cfg.GatewayAPIKey = os.Getenv("WHATSAPP_GATEWAY_API_KEY")

	cfg.GatewayTimeout, err = time.ParseDuration(getOrDefault("WHATSAPP_GATEWAY_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WHATSAPP_GATEWAY_TIMEOUT: %w", err)
	}

	cfg.DefaultCountryCode = getOrDefault("DEFAULT_COUNTRY_CODE", "55")
	cfg.GatewaySuffix = getOrDefault("GATEWAY_ADDRESS_SUFFIX", "@c.us")

	cfg.VAPIDPublicKey = os.Getenv("VAPID_PUBLIC_KEY")
	cfg.VAPIDPrivateKey = os.Getenv("VAPID_PRIVATE_KEY")
	cfg.PushSubscriber = getOrDefault("PUSH_SUBSCRIBER", "mailto:admin@example.com")

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		cfg.SMTPPort, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
	} else {
		cfg.SMTPPort = 587
	}
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	cfg.SMTPFrom = getOrDefault("SMTP_FROM", cfg.SMTPUser)

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if chatIDStr := os.Getenv("ADMIN_CHAT_ID"); chatIDStr != "" {
		cfg.AdminChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_CHAT_ID: %w", err)
		}
	}

	cfg.CronSpecDailyReminders = getOrDefault("CRON_SPEC_DAILY_REMINDERS", "0 9 * * *")
	cfg.CronSpecGatewayStatus = getOrDefault("CRON_SPEC_GATEWAY_STATUS", "*/5 * * * *")
	cfg.CronSecret = os.Getenv("CRON_SECRET")

	cfg.CountAnyChannel = strings.EqualFold(os.Getenv("COUNT_ANY_CHANNEL_SUCCESS"), "true")

	cfg.LogLevel = strings.ToLower(getOrDefault("LOG_LEVEL", "info"))
	cfg.Environment = strings.ToLower(getOrDefault("ENVIRONMENT", "development"))

	return cfg, nil
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
