// Package config loads chemref CLI settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI settings. Zero values mean "not set" when merging.
type Config struct {
	// Database is a SQLite store whose imported datasets take precedence over
	// the bundled data.
	Database string `yaml:"database"`

	// Catalog is a CUE catalog file replacing the bundled catalog.
	Catalog string `yaml:"catalog"`

	// Format is the output format: text or json.
	Format string `yaml:"format"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	// MetricsFile receives resolution metrics in Prometheus text format
	// when a command finishes.
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{Format: FormatText}
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be %q or %q", c.Format, FormatText, FormatJSON)
	}
}

// LoadFromFile reads a config file. Unknown keys are an error.
// An empty file yields a zero Config.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

// Merge overlays the fields set in other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Database != "" {
		c.Database = other.Database
	}
	if other.Catalog != "" {
		c.Catalog = other.Catalog
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Verbose {
		c.Verbose = true
	}
	if other.MetricsFile != "" {
		c.MetricsFile = other.MetricsFile
	}
}
