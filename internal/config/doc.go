// Package config loads tool configuration by layering defaults, an optional
// YAML file and PARKRUN_-prefixed environment variables.
package config
