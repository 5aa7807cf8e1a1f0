//go:build cucumber

package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestPipelineScenarios runs the pipeline feature scenarios.
func TestPipelineScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "pipeline",
		ScenarioInitializer: InitializePipelineScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("testdata", "features")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializePipelineScenario wires steps for pipeline scenarios.
func InitializePipelineScenario(ctx *godog.ScenarioContext) {
	state := &pipelineScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a question document:$`, state.givenDocument)
	ctx.Step(`^no question document$`, state.givenNoDocument)
	ctx.Step(`^a bucket count of (-?\d+)$`, state.givenBucketCount)
	ctx.Step(`^I run the pipeline$`, state.whenIRunThePipeline)
	ctx.Step(`^the run succeeds$`, state.thenRunSucceeds)
	ctx.Step(`^the run fails with "([^"]+)"$`, state.thenRunFailsWith)
	ctx.Step(`^no artifact is written$`, state.thenNoArtifact)
	ctx.Step(`^bucket (\d+) holds the questions at positions "([^"]*)"$`, state.thenBucketHolds)
	ctx.Step(`^question "([^"]+)" has correct answer (\d+)$`, state.thenCorrectAnswer)
	ctx.Step(`^question "([^"]+)" has text "((?:[^"\\]|\\.)*)"$`, state.thenText)
	ctx.Step(`^the report lists a "([^"]+)" (warning|rejection) for question (\d+)$`, state.thenReportLists)
	ctx.Step(`^the report counts (\d+) valid questions out of (\d+)$`, state.thenReportCounts)
}

type pipelineScenarioState struct {
	dir         string
	inputPath   string
	outputPath  string
	bucketCount int
	report      Report
	err         error
	records     map[string]renderedRecord
	order       map[int][]string
}

// renderedRecord holds the raw field literals of one record in the module.
type renderedRecord struct {
	bucket int
	fields map[string]string
}

// reset gives each scenario a fresh directory.
func (s *pipelineScenarioState) reset() error {
	dir, err := os.MkdirTemp("", "dailyq-pipeline-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	*s = pipelineScenarioState{
		dir:        dir,
		inputPath:  filepath.Join(dir, "questions.json"),
		outputPath: filepath.Join(dir, "out", "mockQuestions.ts"),
	}
	return nil
}

// cleanup removes the scenario directory.
func (s *pipelineScenarioState) cleanup() {
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}

func (s *pipelineScenarioState) givenDocument(doc *godog.DocString) error {
	return os.WriteFile(s.inputPath, []byte(doc.Content), 0o644)
}

func (s *pipelineScenarioState) givenNoDocument() error {
	return nil
}

func (s *pipelineScenarioState) givenBucketCount(count int) error {
	s.bucketCount = count
	return nil
}

// whenIRunThePipeline runs the pipeline and indexes the written module.
func (s *pipelineScenarioState) whenIRunThePipeline() error {
	s.report, s.err = Run(context.Background(), Params{
		InputPath:   s.inputPath,
		OutputPath:  s.outputPath,
		BucketCount: s.bucketCount,
	})
	if s.err != nil {
		return nil
	}
	data, err := os.ReadFile(s.outputPath)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}
	s.records, s.order = indexModule(string(data))
	return nil
}

func (s *pipelineScenarioState) thenRunSucceeds() error {
	if s.err != nil {
		return fmt.Errorf("expected success, got %v", s.err)
	}
	return nil
}

func (s *pipelineScenarioState) thenRunFailsWith(kind string) error {
	var pipelineErr *Error
	if !errors.As(s.err, &pipelineErr) {
		return fmt.Errorf("expected pipeline error, got %v", s.err)
	}
	if string(pipelineErr.Kind) != kind {
		return fmt.Errorf("expected %s, got %s", kind, pipelineErr.Kind)
	}
	return nil
}

func (s *pipelineScenarioState) thenNoArtifact() error {
	if _, err := os.Stat(s.outputPath); !os.IsNotExist(err) {
		return fmt.Errorf("expected no artifact at %s", s.outputPath)
	}
	return nil
}

func (s *pipelineScenarioState) thenBucketHolds(index int, positions string) error {
	var want []string
	for _, position := range strings.Split(positions, ",") {
		if position = strings.TrimSpace(position); position != "" {
			want = append(want, fmt.Sprintf("q_%d_%s", index, position))
		}
	}
	got := s.order[index]
	if strings.Join(got, ",") != strings.Join(want, ",") {
		return fmt.Errorf("expected bucket %d to hold %v, got %v", index, want, got)
	}
	return nil
}

func (s *pipelineScenarioState) thenCorrectAnswer(id string, answer int) error {
	record, ok := s.records[id]
	if !ok {
		return fmt.Errorf("question %s not in artifact", id)
	}
	if got := record.fields["correctAnswer"]; got != strconv.Itoa(answer) {
		return fmt.Errorf("expected correctAnswer %d, got %s", answer, got)
	}
	return nil
}

func (s *pipelineScenarioState) thenText(id, escaped string) error {
	want, err := strconv.Unquote(`"` + escaped + `"`)
	if err != nil {
		return fmt.Errorf("unquote expected text: %w", err)
	}
	record, ok := s.records[id]
	if !ok {
		return fmt.Errorf("question %s not in artifact", id)
	}
	var got string
	if err := json.Unmarshal([]byte(record.fields["text"]), &got); err != nil {
		return fmt.Errorf("decode text literal %s: %w", record.fields["text"], err)
	}
	if got != want {
		return fmt.Errorf("expected text %q, got %q", want, got)
	}
	return nil
}

func (s *pipelineScenarioState) thenReportLists(reason, severity string, index int) error {
	matches := 0
	for _, diag := range s.report.Diagnostics {
		if diag.Index == index && string(diag.Reason) == reason && string(diag.Severity) == severity {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("expected one %s %s for Q%d, got %d in %v", reason, severity, index, matches, s.report.Diagnostics)
	}
	return nil
}

func (s *pipelineScenarioState) thenReportCounts(valid, input int) error {
	if s.report.Valid != valid || s.report.Input != input {
		return fmt.Errorf("expected %d valid of %d, got %d of %d", valid, input, s.report.Valid, s.report.Input)
	}
	return nil
}

// indexModule collects records by id and the id order of each bucket key.
func indexModule(module string) (map[string]renderedRecord, map[int][]string) {
	records := map[string]renderedRecord{}
	order := map[int][]string{}
	bucketIndex := 0
	var current *renderedRecord
	for _, line := range strings.Split(module, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(line, "  ") && !strings.HasPrefix(line, "   ") && strings.HasSuffix(trimmed, ": [") {
			if n, err := strconv.Atoi(strings.TrimSuffix(trimmed, ": [")); err == nil {
				bucketIndex = n
			}
			continue
		}
		switch {
		case trimmed == "{":
			current = &renderedRecord{bucket: bucketIndex, fields: map[string]string{}}
		case trimmed == "}," && current != nil:
			var id string
			_ = json.Unmarshal([]byte(current.fields["id"]), &id)
			records[id] = *current
			order[current.bucket] = append(order[current.bucket], id)
			current = nil
		case current != nil:
			name, value, ok := strings.Cut(trimmed, ": ")
			if ok {
				current.fields[name] = strings.TrimSuffix(value, ",")
			}
		}
	}
	return records, order
}
