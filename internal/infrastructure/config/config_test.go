package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.AppPort != "8080" {
		t.Fatalf("expected default port, got %q", cfg.AppPort)
	}
	if cfg.ProfileStore != ProfileStoreDynamoDB {
		t.Fatalf("expected dynamodb store, got %q", cfg.ProfileStore)
	}
	if cfg.PersistDebounce() != 500*time.Millisecond || cfg.PersistFastDebounce() != 100*time.Millisecond {
		t.Fatalf("unexpected debounce windows: %v %v", cfg.PersistDebounce(), cfg.PersistFastDebounce())
	}
	if cfg.SelectionTTL() != 24*time.Hour {
		t.Fatalf("unexpected selection ttl: %v", cfg.SelectionTTL())
	}
	if cfg.SessionIdleTTL() != 30*time.Minute {
		t.Fatalf("unexpected session idle ttl: %v", cfg.SessionIdleTTL())
	}
	if cfg.IsProduction() {
		t.Fatalf("expected development env")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PROFILE_STORE", " Mongo ")
	t.Setenv("BOOKING_SERVICE_MOCK", "true")
	t.Setenv("PERSIST_DEBOUNCE_MS", "250")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.AppPort != "9090" {
		t.Fatalf("expected 9090, got %q", cfg.AppPort)
	}
	if cfg.ProfileStore != ProfileStoreMongo {
		t.Fatalf("expected mongo, got %q", cfg.ProfileStore)
	}
	if !cfg.BookingServiceMock {
		t.Fatalf("expected mock booking service")
	}
	if cfg.PersistDebounce() != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", cfg.PersistDebounce())
	}
}

func TestLoad_UnknownProfileStore(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PROFILE_STORE", "postgres")

	_, err := Load()
	if !errors.Is(err, ErrUnknownProfileStore) {
		t.Fatalf("expected ErrUnknownProfileStore, got %v", err)
	}
}
