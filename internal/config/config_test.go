package config

import (
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("UPCOMING_WINDOW_DAYS", "")
	t.Setenv("TRIAL_WINDOW_DAYS", "")
	t.Setenv("NOTIFY_INTERVAL", "")
	t.Setenv("OWNER_USER_ID", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.DatabaseDSN != "finkeeper.db" {
		t.Fatalf("DatabaseDSN default expected 'finkeeper.db', got %q", cfg.DatabaseDSN)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.UpcomingWindowDays != 7 {
		t.Fatalf("UpcomingWindowDays default expected 7, got %d", cfg.UpcomingWindowDays)
	}
	if cfg.TrialWindowDays != 3 {
		t.Fatalf("TrialWindowDays default expected 3, got %d", cfg.TrialWindowDays)
	}
	if cfg.NotifyInterval != time.Hour {
		t.Fatalf("NotifyInterval default expected 1h, got %s", cfg.NotifyInterval)
	}
	if cfg.OwnerUserID != 1 {
		t.Fatalf("OwnerUserID default expected 1, got %d", cfg.OwnerUserID)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("UPCOMING_WINDOW_DAYS", "14")
	t.Setenv("NOTIFY_INTERVAL", "30m")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.UpcomingWindowDays != 14 {
		t.Fatalf("UpcomingWindowDays expected 14, got %d", cfg.UpcomingWindowDays)
	}
	if cfg.NotifyInterval != 30*time.Minute {
		t.Fatalf("NotifyInterval expected 30m, got %s", cfg.NotifyInterval)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}
