package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the tool settings.
type Config struct {
	DataDir             string `koanf:"data_dir"`
	FetchTimeoutSeconds int    `koanf:"fetch_timeout_seconds"`
	UserAgent           string `koanf:"user_agent"`
	Format              string `koanf:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataDir:             "~/.local/share/parkrun-stats",
		FetchTimeoutSeconds: 60,
		Format:              "text",
	}
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (Default())
//  2. file (YAML) at path, or $PARKRUN_CONFIG when path is empty
//  3. env (prefix PARKRUN_)
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("PARKRUN_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: PARKRUN_DATA_DIR, PARKRUN_FETCH_TIMEOUT_SECONDS, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("PARKRUN_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "parkrun_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.FetchTimeoutSeconds <= 0 {
		return nil, errors.New("fetch_timeout_seconds must be positive")
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, errors.New("format must be 'text' or 'json'")
	}
	return &cfg, nil
}
