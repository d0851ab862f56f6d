package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Mr-Jayed/TracON-Project1/internal/config"
)

func TestLoad_RequiresCredential(t *testing.T) {
	t.Setenv("ONESIGNAL_REST_API_KEY", "")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error when ONESIGNAL_REST_API_KEY is missing")
	}
	if !strings.Contains(err.Error(), "ONESIGNAL_REST_API_KEY") {
		t.Fatalf("expected error to name the variable, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ONESIGNAL_REST_API_KEY", "rest-key")
	t.Setenv("ALARM_TIMEZONE", "UTC")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OneSignalAPIKey != "rest-key" {
		t.Fatalf("expected key to be loaded, got %q", cfg.OneSignalAPIKey)
	}
	if cfg.OneSignalURL != "https://api.onesignal.com/notifications" {
		t.Fatalf("unexpected provider URL %q", cfg.OneSignalURL)
	}
	if cfg.OneSignalAppID != "e81fbf1a-1e59-4bc3-8254-1f738607b947" {
		t.Fatalf("unexpected app id %q", cfg.OneSignalAppID)
	}
	if cfg.AlarmPriority != 10 || cfg.AlarmSound != "siren" {
		t.Fatalf("unexpected alarm defaults: priority=%d sound=%q", cfg.AlarmPriority, cfg.AlarmSound)
	}
	if cfg.ProviderTimeout != 0 {
		t.Fatalf("expected no provider timeout by default, got %v", cfg.ProviderTimeout)
	}
	if cfg.AlarmLocation != time.UTC {
		t.Fatalf("expected UTC location, got %v", cfg.AlarmLocation)
	}
	if cfg.PersistenceEnabled() {
		t.Fatal("expected persistence to be disabled without DATABASE_URL")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ONESIGNAL_REST_API_KEY", "rest-key")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("PROVIDER_RATE_LIMIT", "25")
	t.Setenv("DATABASE_URL", "postgres://localhost/relay")
	t.Setenv("ALARM_TIMEZONE", "UTC")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.HTTPPort)
	}
	if cfg.ProviderTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.ProviderTimeout)
	}
	if cfg.ProviderRateLimit != 25 {
		t.Fatalf("expected rate limit 25, got %d", cfg.ProviderRateLimit)
	}
	if !cfg.PersistenceEnabled() {
		t.Fatal("expected persistence to be enabled")
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("ONESIGNAL_REST_API_KEY", "rest-key")
	t.Setenv("ALARM_TIMEZONE", "Mars/Olympus_Mons")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
