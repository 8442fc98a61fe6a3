// Package config defines all configuration structures for GPCR Activity
// Studio.  No I/O or parsing logic lives here — only plain data types and
// validation; loading is handled by loader.go.
package config

import (
	"fmt"
	"time"
)

// Version is the studio release version, overridable at build time via ldflags.
var Version = "dev"

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string   `mapstructure:"format"` // "json" | "console"
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// ScoringConfig holds scoring-adapter parameters.  The mock adapter ignores
// the timeout; a real classifier backend is bounded by it so that a slow
// model fails the whole submission instead of hanging the request.
type ScoringConfig struct {
	Adapter          string        `mapstructure:"adapter"` // "mock" is the only backend in this version
	Timeout          time.Duration `mapstructure:"timeout"`
	DefaultThreshold float64       `mapstructure:"default_threshold"`
}

// ThemeConfig is the emerald colour palette handed to the presentation shell.
// The shell renders whatever palette it receives; keeping it in configuration
// rather than shell globals lets deployments rebrand without a rebuild.
type ThemeConfig struct {
	MintCream    string `mapstructure:"mint_cream" json:"mint_cream"`
	SoftSage     string `mapstructure:"soft_sage" json:"soft_sage"`
	RichEmerald  string `mapstructure:"rich_emerald" json:"rich_emerald"`
	DeepPine     string `mapstructure:"deep_pine" json:"deep_pine"`
	AccentForest string `mapstructure:"accent_forest" json:"accent_forest"`
	White        string `mapstructure:"white" json:"white"`
}

// StudioConfig holds presentation-shell settings served to the UI.
type StudioConfig struct {
	Title string      `mapstructure:"title" json:"title"`
	Theme ThemeConfig `mapstructure:"theme" json:"theme"`

	// ArtifactsFolder is displayed in the shell sidebar but intentionally has
	// no effect: artifact storage is disabled in UI-only mode.
	ArtifactsFolder string `mapstructure:"artifacts_folder" json:"artifacts_folder"`

	// ArtifactsEnabled stays false in this version; the sidebar control is a
	// no-op until a storage backend exists.
	ArtifactsEnabled bool `mapstructure:"artifacts_enabled" json:"artifacts_enabled"`
}

// MetricsConfig holds prometheus exposition settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Config — top-level aggregate
// ─────────────────────────────────────────────────────────────────────────────

// Config aggregates every configuration section of the studio.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Studio  StudioConfig  `mapstructure:"studio"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// Validate checks cross-field consistency of the whole configuration.
// It is called by the loader after defaults are applied, so every field can
// be assumed populated.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Server.MaxBodySize <= 0 {
		return fmt.Errorf("server.max_body_size must be positive, got %d", c.Server.MaxBodySize)
	}
	if c.Scoring.Adapter != "mock" {
		return fmt.Errorf("scoring.adapter %q is not supported (only \"mock\" in this version)", c.Scoring.Adapter)
	}
	if c.Scoring.Timeout <= 0 {
		return fmt.Errorf("scoring.timeout must be positive, got %s", c.Scoring.Timeout)
	}
	if c.Scoring.DefaultThreshold < 0 || c.Scoring.DefaultThreshold > 1 {
		return fmt.Errorf("scoring.default_threshold must be in [0, 1], got %g", c.Scoring.DefaultThreshold)
	}
	return nil
}
