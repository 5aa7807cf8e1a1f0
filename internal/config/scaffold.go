package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configTemplate = `version: 1
# JSON array (or YAML sequence) of question objects produced by the extraction scripts.
input: %q
# Generated TypeScript module, rewritten atomically on every run.
output: %q
# Study-plan days the questions are spread across.
bucket_count: %d
`

// Scaffold writes a starter config file at configPath.
func Scaffold(configPath, input, output string, bucketCount int) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if strings.TrimSpace(input) == "" {
		input = DefaultInput
	}
	if strings.TrimSpace(output) == "" {
		output = DefaultOutput
	}
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	content := fmt.Sprintf(configTemplate, input, output, bucketCount)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
