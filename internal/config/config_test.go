package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://httpbin.org" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.RequestTimeout)
	}
	if cfg.ProbeInterval != 0 {
		t.Fatalf("expected run-once default, got %v", cfg.ProbeInterval)
	}
	if cfg.FollowRedirects || cfg.StrictJSON {
		t.Fatalf("expected redirects and strict json disabled by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BASE_URL", "http://localhost:8080/")
	t.Setenv("STRICT_JSON", "true")
	t.Setenv("PROBE_INTERVAL_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
	if !cfg.StrictJSON {
		t.Fatalf("expected strict json from env")
	}
	if cfg.ProbeInterval != 30*time.Second {
		t.Fatalf("unexpected interval %v", cfg.ProbeInterval)
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error")
	}
}
