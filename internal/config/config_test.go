package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.Language != defaultLanguage {
		t.Fatalf("Language = %q, want %q", cfg.Language, defaultLanguage)
	}
	if cfg.Carousel.AutoplayInterval != 5*time.Second {
		t.Fatalf("AutoplayInterval = %v, want 5s", cfg.Carousel.AutoplayInterval)
	}
	if cfg.Carousel.MountAttempts != 5 {
		t.Fatalf("MountAttempts = %d, want 5", cfg.Carousel.MountAttempts)
	}
}

func TestLoad_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	body := `theme = "Slate"
language = "fr"

[carousel]
autoplay_interval_ms = 3000
mount_attempts = 2
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", cfg.Theme)
	}
	if cfg.Language != "fr" {
		t.Fatalf("Language = %q, want fr", cfg.Language)
	}
	if cfg.Carousel.AutoplayInterval != 3*time.Second {
		t.Fatalf("AutoplayInterval = %v, want 3s", cfg.Carousel.AutoplayInterval)
	}
	if cfg.Carousel.MountAttempts != 2 {
		t.Fatalf("MountAttempts = %d, want 2", cfg.Carousel.MountAttempts)
	}
	// Unset fields keep defaults.
	if cfg.Carousel.ResumeDelay != 2*time.Second {
		t.Fatalf("ResumeDelay = %v, want default 2s", cfg.Carousel.ResumeDelay)
	}
}

func TestLoad_InvalidTOMLIsAnError(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(path, []byte("not toml {{{"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRetryPolicyConversion(t *testing.T) {
	cc := CarouselConfig{MountAttempts: 3, MountRetryDelay: 150 * time.Millisecond}
	policy := cc.RetryPolicy()
	if policy.MaxAttempts != 3 || policy.Delay != 150*time.Millisecond {
		t.Fatalf("policy = %+v", policy)
	}
}
