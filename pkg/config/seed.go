package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedConfig controls the seed CLI: how many articles to generate and which
// categories to spread them across. Categories are validated by the caller
// against the catalog's fixed category set.
type SeedConfig struct {
	// Count is the number of articles to generate.
	Count int `yaml:"count"`
	// Categories to distribute articles over, round-robin. Empty means all
	// known categories.
	Categories []string `yaml:"categories"`
	// Author recorded on generated articles.
	Author string `yaml:"author"`
	// DropFirst removes all existing articles before seeding.
	DropFirst bool `yaml:"drop_first"`
}

// DefaultSeedConfig returns the configuration used when no file is given.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Count:  50,
		Author: "seed-bot",
	}
}

// LoadSeedConfig reads a YAML seed configuration from path.
// Missing fields keep their defaults.
func LoadSeedConfig(path string) (SeedConfig, error) {
	cfg := DefaultSeedConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read seed config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse seed config: %w", err)
	}
	if cfg.Count <= 0 {
		return cfg, fmt.Errorf("seed config: count must be positive, got %d", cfg.Count)
	}
	return cfg, nil
}
