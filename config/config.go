// Package config loads grayknuth runtime configuration.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (GRAYKNUTH_LOG_LEVEL, GRAYKNUTH_CODEC_STRICT, ...)
//  2. YAML config file, when a path is given
//  3. Defaults
//
// Environment variables drop the GRAYKNUTH_ prefix, are lowercased and split
// on the first underscore into section and field:
//
//	GRAYKNUTH_LOG_LEVEL        -> log.level
//	GRAYKNUTH_METRICS_TEXTFILE -> metrics.textfile
//
// Example file:
//
//	log:
//	  level: debug
//	  format: console
//	codec:
//	  strict: true
//	metrics:
//	  enabled: true
//	  textfile: /var/lib/node_exporter/grayknuth.prom
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvPrefix is the prefix of every recognised environment variable.
	EnvPrefix = "GRAYKNUTH_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Config is the full runtime configuration.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Codec   CodecConfig   `koanf:"codec"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CodecConfig controls decode behaviour.
type CodecConfig struct {
	// Strict rejects encodings that are not weight-balanced.
	Strict bool `koanf:"strict"`
}

// MetricsConfig controls the Prometheus textfile dump.
type MetricsConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Textfile string `koanf:"textfile"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults, the optional YAML file at path and
// the environment, then validates it. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their default values.
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// envKey maps GRAYKNUTH_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}

	return parts[0] + "." + parts[1]
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log format must be 'json' or 'console', got %q", c.Log.Format)
	}
	if c.Metrics.Enabled && c.Metrics.Textfile == "" {
		return fmt.Errorf("metrics textfile path is required when metrics are enabled")
	}

	return nil
}
