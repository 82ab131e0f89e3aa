package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NEWS_API_KEY", " secret ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NewsAPIKey != "secret" {
		t.Fatalf("expected trimmed api key, got %q", cfg.NewsAPIKey)
	}
	if cfg.ToastDuration != 2*time.Second {
		t.Fatalf("unexpected toast duration %v", cfg.ToastDuration)
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Fatalf("unexpected fetch timeout %v", cfg.FetchTimeout)
	}
	if cfg.StorageType != "bbolt" {
		t.Fatalf("unexpected storage type %q", cfg.StorageType)
	}
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("SESSION_TTL_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero session ttl")
	}
}

func TestRedactedMasksAPIKey(t *testing.T) {
	cfg := Config{NewsAPIKey: "k"}
	if got := cfg.Redacted().NewsAPIKey; got != "***" {
		t.Fatalf("expected masked key, got %q", got)
	}
	if cfg.NewsAPIKey != "k" {
		t.Fatalf("Redacted must not mutate the receiver")
	}
}
