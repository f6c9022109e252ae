package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/atelierkast/vitrine/internal/carousel"
)

// Config captures the tunables Vitrine reads at startup.
type Config struct {
	Theme    string
	Language string
	LogPath  string
	Carousel CarouselConfig
}

// CarouselConfig holds the carousel timing knobs and the mount retry
// policy, so none of them live as magic numbers in the UI.
type CarouselConfig struct {
	AutoplayInterval time.Duration
	ResumeDelay      time.Duration
	ResizeQuiet      time.Duration
	MountAttempts    int
	MountRetryDelay  time.Duration
}

const (
	defaultConfigPath = "~/.config/vitrine/config.toml"
	defaultLogPath    = "~/.local/share/vitrine/vitrine.log"
	defaultTheme      = "Dracula"
	defaultLanguage   = "en"

	defaultAutoplayMs    = 5000
	defaultResumeMs      = 2000
	defaultResizeQuietMs = 250
)

// RetryPolicy converts the mount settings into the carousel's policy.
func (c CarouselConfig) RetryPolicy() carousel.RetryPolicy {
	return carousel.RetryPolicy{
		MaxAttempts: c.MountAttempts,
		Delay:       c.MountRetryDelay,
	}
}

func defaults() Config {
	retry := carousel.DefaultRetryPolicy()
	return Config{
		Theme:    defaultTheme,
		Language: defaultLanguage,
		LogPath:  mustExpand(defaultLogPath),
		Carousel: CarouselConfig{
			AutoplayInterval: defaultAutoplayMs * time.Millisecond,
			ResumeDelay:      defaultResumeMs * time.Millisecond,
			ResizeQuiet:      defaultResizeQuietMs * time.Millisecond,
			MountAttempts:    retry.MaxAttempts,
			MountRetryDelay:  retry.Delay,
		},
	}
}

// Load locates and parses the Vitrine config, falling back to defaults
// when the file is missing or fields are empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Theme    string `toml:"theme"`
		Language string `toml:"language"`
		LogPath  string `toml:"log_path"`
		Carousel struct {
			AutoplayIntervalMs int `toml:"autoplay_interval_ms"`
			ResumeDelayMs      int `toml:"resume_delay_ms"`
			ResizeQuietMs      int `toml:"resize_quiet_ms"`
			MountAttempts      int `toml:"mount_attempts"`
			MountRetryDelayMs  int `toml:"mount_retry_delay_ms"`
		} `toml:"carousel"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if lang := strings.TrimSpace(raw.Language); lang != "" {
		cfg.Language = lang
	}
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}

	if ms := raw.Carousel.AutoplayIntervalMs; ms > 0 {
		cfg.Carousel.AutoplayInterval = time.Duration(ms) * time.Millisecond
	}
	if ms := raw.Carousel.ResumeDelayMs; ms > 0 {
		cfg.Carousel.ResumeDelay = time.Duration(ms) * time.Millisecond
	}
	if ms := raw.Carousel.ResizeQuietMs; ms > 0 {
		cfg.Carousel.ResizeQuiet = time.Duration(ms) * time.Millisecond
	}
	if n := raw.Carousel.MountAttempts; n > 0 {
		cfg.Carousel.MountAttempts = n
	}
	if ms := raw.Carousel.MountRetryDelayMs; ms > 0 {
		cfg.Carousel.MountRetryDelay = time.Duration(ms) * time.Millisecond
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
