// Package config loads the optional YAML run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Report formats understood by the writers.
const (
	FormatXLSX = "xlsx"
	FormatText = "text"
)

// Config controls the report side of a run. Every field has a usable
// default so the file is entirely optional.
type Config struct {
	// StatusLabels are the three triage states offered per row; the
	// first one seeds every new row.
	StatusLabels []string `yaml:"status_labels"`
	// Format selects the report writer: xlsx or text.
	Format string `yaml:"format"`
	// Checksums enables the per-file checksum column.
	Checksums bool `yaml:"checksums"`
	// Output is the report file path. Empty means a timestamped name in
	// the working directory.
	Output string `yaml:"output"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		StatusLabels: []string{"Pending", "In Progress", "Done"},
		Format:       FormatXLSX,
	}
}

// LoadConfig reads the YAML config at path. A missing file yields the
// defaults; a present but unparsable or invalid file is an error, since
// the user explicitly asked for it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.StatusLabels) != 3 {
		return fmt.Errorf("status_labels must hold exactly 3 labels, got %d", len(c.StatusLabels))
	}
	for _, label := range c.StatusLabels {
		if label == "" {
			return fmt.Errorf("status_labels must not contain empty labels")
		}
	}

	return ValidateFormat(c.Format)
}

// ValidateFormat checks that format names a known report writer.
func ValidateFormat(format string) error {
	switch format {
	case FormatXLSX, FormatText:
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
