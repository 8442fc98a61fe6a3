package config

import "time"

// Default values applied by ApplyDefaults for any unset field.
const (
	DefaultServerPort       = 8080
	DefaultReadTimeout      = 15 * time.Second
	DefaultWriteTimeout     = 30 * time.Second
	DefaultMaxBodySize      int64 = 8 << 20 // 8 MiB; uploads are read fully into memory
	DefaultShutdownTimeout  = 30 * time.Second
	DefaultScoringAdapter   = "mock"
	DefaultScoringTimeout   = 30 * time.Second
	DefaultThreshold        = 0.5
	DefaultMetricsNamespace = "gpcr_studio"
	DefaultStudioTitle      = "GPCR Functional Activity Studio"
	DefaultArtifactsFolder  = "artifacts"
)

// DefaultTheme is the emerald palette the shell ships with.
var DefaultTheme = ThemeConfig{
	MintCream:    "#E9F6EF",
	SoftSage:     "#9CC9AE",
	RichEmerald:  "#1B7F5D",
	DeepPine:     "#145943",
	AccentForest: "#0D3B2D",
	White:        "#FFFFFF",
}

// ApplyDefaults fills every zero-valued field of cfg with its default.
// Explicitly configured values are never overwritten.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	if cfg.Scoring.Adapter == "" {
		cfg.Scoring.Adapter = DefaultScoringAdapter
	}
	if cfg.Scoring.Timeout == 0 {
		cfg.Scoring.Timeout = DefaultScoringTimeout
	}
	// DefaultThreshold is not defaulted here: 0.0 is a valid configured
	// threshold, so the zero value cannot mean "unset".  The loader registers
	// the default with viper instead, and NewDefaultConfig sets it directly.

	if cfg.Studio.Title == "" {
		cfg.Studio.Title = DefaultStudioTitle
	}
	if cfg.Studio.ArtifactsFolder == "" {
		cfg.Studio.ArtifactsFolder = DefaultArtifactsFolder
	}
	if (cfg.Studio.Theme == ThemeConfig{}) {
		cfg.Studio.Theme = DefaultTheme
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// NewDefaultConfig returns a Config populated entirely with defaults.
// Used by entry points when no configuration file is present.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Scoring.DefaultThreshold = DefaultThreshold
	cfg.Metrics.Enabled = true
	return cfg
}
