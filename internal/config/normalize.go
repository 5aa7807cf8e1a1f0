package config

import (
	"strings"

	"dailyq/internal/spec"
)

// Normalize trims paths and fills in the default bucket count.
func Normalize(cfg *spec.Config) {
	cfg.Input = strings.TrimSpace(cfg.Input)
	cfg.Output = strings.TrimSpace(cfg.Output)
	if cfg.BucketCount == 0 {
		cfg.BucketCount = DefaultBucketCount
	}
}
