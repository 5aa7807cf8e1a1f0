package config

import (
	"os"
	"path/filepath"
	"testing"

	"dailyq/internal/spec"
)

// validConfig returns a minimal config used by validation tests.
func validConfig() spec.Config {
	return spec.Config{
		Version:     1,
		Input:       "questions.json",
		Output:      "out/mockQuestions.ts",
		BucketCount: 45,
	}
}

// writeConfigFile writes a config under root/.dailyq and returns its path.
func writeConfigFile(t *testing.T, root, body string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
