// Package config handles loading and parsing the Vitrine configuration file.
//
// # Overview
//
// Vitrine runs fine with no config file at all; everything has a
// sensible default. When ~/.config/vitrine/config.toml exists, it can
// override the theme, the default language, the diagnostic log path,
// and the carousel timing knobs.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/vitrine/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	theme = "Dracula"
//	language = "en"
//	log_path = "~/.local/share/vitrine/vitrine.log"
//
//	[carousel]
//	autoplay_interval_ms = 5000
//	resume_delay_ms = 2000
//	resize_quiet_ms = 250
//	mount_attempts = 5
//	mount_retry_delay_ms = 200
package config
