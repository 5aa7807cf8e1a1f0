package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadResolvesPathsAgainstRoot verifies relative paths resolve from the project root.
func TestLoadResolvesPathsAgainstRoot(t *testing.T) {
	root := t.TempDir()
	path := writeConfigFile(t, root, `version: 1
input: data/questions.json
output: src/mockQuestions.ts
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Input != filepath.Join(root, "data", "questions.json") {
		t.Fatalf("unexpected input path: %s", cfg.Input)
	}
	if cfg.Output != filepath.Join(root, "src", "mockQuestions.ts") {
		t.Fatalf("unexpected output path: %s", cfg.Output)
	}
	if cfg.BucketCount != DefaultBucketCount {
		t.Fatalf("expected default bucket count, got %d", cfg.BucketCount)
	}
}

// TestLoadKeepsAbsolutePaths verifies absolute paths are not rebased.
func TestLoadKeepsAbsolutePaths(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(t.TempDir(), "questions.json")
	path := writeConfigFile(t, root, "version: 1\ninput: "+input+"\noutput: out.ts\nbucket_count: 3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Input != input {
		t.Fatalf("expected absolute input to be kept, got %s", cfg.Input)
	}
	if cfg.BucketCount != 3 {
		t.Fatalf("expected bucket count 3, got %d", cfg.BucketCount)
	}
}

// TestLoadReportsValidationErrors verifies validation runs during load.
func TestLoadReportsValidationErrors(t *testing.T) {
	root := t.TempDir()
	path := writeConfigFile(t, root, "version: 1\nbucket_count: -4\n")

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, field := range []string{"input", "output", "bucket_count"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s in error, got %q", field, err.Error())
		}
	}
}

// TestFindConfigPathSearchesParents verifies upward discovery.
func TestFindConfigPathSearchesParents(t *testing.T) {
	root := t.TempDir()
	path := writeConfigFile(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("create nested dir: %v", err)
	}

	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	if found != path {
		t.Fatalf("expected %s, got %s", path, found)
	}
}

// TestFindConfigPathMissingFile verifies a bare .dailyq dir is reported.
func TestFindConfigPathMissingFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(ConfigDir(root), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}

	_, err := FindConfigPath(root)
	if err == nil {
		t.Fatalf("expected missing config error")
	}
	if !strings.Contains(err.Error(), ConfigFileName) {
		t.Fatalf("expected error to name %s, got %q", ConfigFileName, err.Error())
	}
}

// TestScaffoldWritesLoadableConfig verifies the starter config round-trips through Load.
func TestScaffoldWritesLoadableConfig(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)

	if err := Scaffold(path, "", "", 0); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffolded config: %v", err)
	}
	if cfg.Input != filepath.Join(root, DefaultInput) {
		t.Fatalf("unexpected input: %s", cfg.Input)
	}
	if err := Scaffold(path, "", "", 0); err == nil {
		t.Fatalf("expected second scaffold to fail")
	}
}
