package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"RESTOPS_DATA_DIR", "RESTOPS_STATE_FILE", "RESTOPS_AUDIT_DIR",
		"REDIS_URL", "RESTOPS_MAX_PHOTOS", "RESTOPS_CAPTURE_SCALE",
		"RESTOPS_CAPTURE_TIMEOUT_SECONDS", "RESTOPS_SETTLE_DELAY_MS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DataDir != "./data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.MaxPhotos != 10 {
		t.Errorf("MaxPhotos = %d", cfg.MaxPhotos)
	}
	if cfg.CaptureScale != 2 {
		t.Errorf("CaptureScale = %v", cfg.CaptureScale)
	}
	if cfg.CaptureTimeout != 30*time.Second {
		t.Errorf("CaptureTimeout = %v", cfg.CaptureTimeout)
	}
	if cfg.SettleDelay != 0 {
		t.Errorf("SettleDelay = %v", cfg.SettleDelay)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RESTOPS_DATA_DIR", "/var/lib/restops")
	t.Setenv("RESTOPS_STATE_FILE", "")
	t.Setenv("RESTOPS_MAX_PHOTOS", "4")
	t.Setenv("RESTOPS_SETTLE_DELAY_MS", "250")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg := Load()
	if cfg.DataDir != "/var/lib/restops" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.StateFile != "/var/lib/restops/state.json" {
		t.Errorf("StateFile = %q", cfg.StateFile)
	}
	if cfg.MaxPhotos != 4 {
		t.Errorf("MaxPhotos = %d", cfg.MaxPhotos)
	}
	if cfg.SettleDelay != 250*time.Millisecond {
		t.Errorf("SettleDelay = %v", cfg.SettleDelay)
	}
	if cfg.RedisURL != "redis://localhost:6379" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
}

func TestGetenvIntRejectsGarbage(t *testing.T) {
	t.Setenv("RESTOPS_MAX_PHOTOS", "lots")
	cfg := Load()
	if cfg.MaxPhotos != 10 {
		t.Errorf("MaxPhotos = %d, want fallback 10", cfg.MaxPhotos)
	}
}
