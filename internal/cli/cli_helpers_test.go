package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

const sampleQuestions = `[
  {"text":"What does XSS stand for?","options":["Cross-site scripting","Extra style sheet"],"correctAnswer":0},
  {"text":"Q without options","options":[]},
  {"text":"Which header limits framing?","options":["X-Frame-Options","Accept"],"correctAnswer":7}
]`

// writeProject creates a project with a config file and a question document.
func writeProject(t *testing.T, buckets int) (root, configPath string) {
	t.Helper()
	root = t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "questions.json"), []byte(sampleQuestions), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}
	configPath = filepath.Join(root, ".dailyq", "config.yml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	body := "version: 1\ninput: questions.json\noutput: web/mockQuestions.ts\nbucket_count: " + strconv.Itoa(buckets) + "\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return root, configPath
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
