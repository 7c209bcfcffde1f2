package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds optional user overrides loaded from a yaml file.
// The prompt and output-path defaults are part of the command contract and
// cannot be overridden here.
type Config struct {
	// Model overrides the transport's default model name.
	Model string `yaml:"model"`

	// AspectRatio overrides the default 1:1 aspect ratio.
	AspectRatio string `yaml:"aspect_ratio"`
}

// DefaultConfigPath returns the default config file location
// (~/.mascotgen/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mascotgen", "config.yaml")
}

// LoadConfig reads the config file at path. A missing or empty path yields
// an empty config rather than an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
