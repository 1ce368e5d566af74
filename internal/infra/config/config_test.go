package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/notifier_test")
	t.Setenv("WHATSAPP_GATEWAY_URL", "http://localhost:3000")
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("WHATSAPP_GATEWAY_URL", "http://localhost:3000")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is missing")
	}
}

func TestLoadRequiresGatewayURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/notifier_test")
	t.Setenv("WHATSAPP_GATEWAY_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when WHATSAPP_GATEWAY_URL is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WHATSAPP_GATEWAY_TIMEOUT", "")
	t.Setenv("DEFAULT_COUNTRY_CODE", "")
	t.Setenv("CRON_SPEC_DAILY_REMINDERS", "")
	t.Setenv("COUNT_ANY_CHANNEL_SUCCESS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.GatewayTimeout != 10*time.Second {
		t.Errorf("expected default 10s gateway timeout, got %v", cfg.GatewayTimeout)
	}
	if cfg.DefaultCountryCode != "55" {
		t.Errorf("expected default country code 55, got %q", cfg.DefaultCountryCode)
	}
	if cfg.GatewaySuffix != "@c.us" {
		t.Errorf("expected default gateway suffix, got %q", cfg.GatewaySuffix)
	}
	if cfg.CronSpecDailyReminders != "0 9 * * *" {
		t.Errorf("expected default cron spec, got %q", cfg.CronSpecDailyReminders)
	}
	if cfg.CronSpecGatewayStatus != "*/5 * * * *" {
		t.Errorf("expected default gateway status spec, got %q", cfg.CronSpecGatewayStatus)
	}
	if cfg.CountAnyChannel {
		t.Errorf("expected message-only success accounting by default")
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("expected default smtp port 587, got %d", cfg.SMTPPort)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WHATSAPP_GATEWAY_URL", "http://gateway:3000/")
	t.Setenv("WHATSAPP_GATEWAY_TIMEOUT", "3s")
	t.Setenv("COUNT_ANY_CHANNEL_SUCCESS", "true")
	t.Setenv("ADMIN_CHAT_ID", "123456789")
	t.Setenv("CRON_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GatewayBaseURL != "http://gateway:3000" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.GatewayBaseURL)
	}
	if cfg.GatewayTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.GatewayTimeout)
	}
	if !cfg.CountAnyChannel {
		t.Errorf("expected any-channel accounting enabled")
	}
	if cfg.AdminChatID != 123456789 {
		t.Errorf("expected admin chat id parsed, got %d", cfg.AdminChatID)
	}
	if cfg.CronSecret != "s3cret" {
		t.Errorf("expected cron secret, got %q", cfg.CronSecret)
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WHATSAPP_GATEWAY_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid timeout")
	}
}

func TestLoadRejectsInvalidAdminChatID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_CHAT_ID", "abc")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid admin chat id")
	}
}
