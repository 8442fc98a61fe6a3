package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all studio settings.
const envPrefix = "GPCR"

// settingKeys lists every configuration key.  Viper only honours environment
// overrides during Unmarshal for keys it already knows about, so each key is
// bound explicitly.
var settingKeys = []string{
	"server.port",
	"server.read_timeout",
	"server.write_timeout",
	"server.max_body_size",
	"server.shutdown_timeout",
	"log.level",
	"log.format",
	"log.output_paths",
	"log.error_output_paths",
	"scoring.adapter",
	"scoring.timeout",
	"scoring.default_threshold",
	"studio.title",
	"studio.artifacts_folder",
	"studio.artifacts_enabled",
	"metrics.enabled",
	"metrics.namespace",
}

// newViper builds a pre-configured Viper instance with the studio's standard
// settings: YAML file type, GPCR_ env prefix, automatic env binding, and a
// key replacer that maps "." → "_" so that nested keys like "server.port"
// resolve to "GPCR_SERVER_PORT".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range settingKeys {
		_ = v.BindEnv(key)
	}
	// Defaulted through viper rather than ApplyDefaults because 0.0 is a
	// valid configured threshold and must not read as "unset".
	v.SetDefault("scoring.default_threshold", DefaultThreshold)
	return v
}

// Load reads the YAML file at configPath, merges any GPCR_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.  It returns a fully-populated *Config or a descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from GPCR_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised (12-factor) deployments.
//
// Environment variable naming convention:
//
//	GPCR_<SECTION>_<FIELD>   e.g.  GPCR_SERVER_PORT, GPCR_LOG_LEVEL
func LoadFromEnv() (*Config, error) {
	v := newViper()
	// No config file — rely solely on env vars and defaults.
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
