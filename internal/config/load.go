package config

import (
	"fmt"
	"os"

	"dailyq/internal/spec"
)

// Load reads, parses, normalizes, and validates a config file. Input and
// output paths come back resolved against the project root.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	root := RootFromConfigPath(path)
	cfg.Input = ResolvePath(root, cfg.Input)
	cfg.Output = ResolvePath(root, cfg.Output)
	return cfg, nil
}
