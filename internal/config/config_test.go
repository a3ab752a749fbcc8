package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Auth.AccessTokenTTL() != 30*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 30m", cfg.Auth.AccessTokenTTL())
	}
	if cfg.Auth.RefreshTokenTTL() != 30*24*time.Hour {
		t.Errorf("RefreshTokenTTL = %v, want 720h", cfg.Auth.RefreshTokenTTL())
	}
	if cfg.Events.ObserverBuffer != 16 {
		t.Errorf("Events.ObserverBuffer = %d, want 16", cfg.Events.ObserverBuffer)
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.App.RequestTimeout())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("EVENTS_OBSERVER_BUFFER", "4")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Port != "9999" {
		t.Errorf("App.Port = %q, want 9999", cfg.App.Port)
	}
	if cfg.Auth.AccessTokenTTL() != 5*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 5m", cfg.Auth.AccessTokenTTL())
	}
	if cfg.Events.ObserverBuffer != 4 {
		t.Errorf("Events.ObserverBuffer = %d, want 4", cfg.Events.ObserverBuffer)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Redis.DB)
	}
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REDIS_DB")
	}
}
