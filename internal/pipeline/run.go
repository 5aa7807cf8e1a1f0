// Package pipeline turns a question document into the generated artifact.
package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"dailyq/internal/artifact"
	"dailyq/internal/bucket"
	"dailyq/internal/logging"
	"dailyq/internal/question"
)

// Params configures a single run.
type Params struct {
	InputPath   string
	OutputPath  string
	BucketCount int
	// Logger receives stage events; nil discards them.
	Logger *logging.Logger
	// DryRun validates and renders without touching OutputPath.
	DryRun   bool
	RunID    string
	Artifact artifact.Options
}

// Run loads, validates, allocates, renders, and writes the artifact. A zero
// BucketCount means bucket.DefaultCount. Per-record problems are reported in
// the Report; only fatal problems return an *Error, and then nothing is
// written.
func Run(ctx context.Context, params Params) (Report, error) {
	logger := logging.Nop()
	if params.Logger != nil {
		logger = *params.Logger
	}
	if params.BucketCount == 0 {
		params.BucketCount = bucket.DefaultCount
	}
	if params.RunID == "" {
		params.RunID = uuid.NewString()
	}
	logger = logger.With().Str("run_id", params.RunID).Logger()

	report := Report{
		RunID:       params.RunID,
		InputPath:   params.InputPath,
		OutputPath:  params.OutputPath,
		BucketCount: params.BucketCount,
		DryRun:      params.DryRun,
	}

	if params.BucketCount < 1 {
		return report, fail(KindInvalidBucketCount, "", bucket.ErrInvalidBucketCount)
	}

	items, err := question.LoadDocument(params.InputPath)
	if err != nil {
		if errors.Is(err, question.ErrDocumentNotFound) {
			return report, fail(KindInputNotFound, params.InputPath, err)
		}
		return report, fail(KindInputMalformed, params.InputPath, err)
	}
	logger.Info().Str("input", params.InputPath).Int("elements", len(items)).Msg("loaded questions")

	records, diags := question.ValidateAll(items)
	for _, diag := range diags {
		logger.Debug().
			Int("index", diag.Index).
			Str("reason", string(diag.Reason)).
			Str("severity", string(diag.Severity)).
			Msg(diag.Message)
	}

	set, err := bucket.Allocate(records, params.BucketCount)
	if err != nil {
		return report, fail(KindInvalidBucketCount, "", err)
	}
	report = summarize(report, len(items), records, diags, set)
	logger.Info().
		Int("valid", report.Valid).
		Int("rejected", report.Rejected).
		Int("warnings", report.Warnings).
		Int("buckets", report.Buckets).
		Msg("allocated questions")

	module, err := artifact.Render(ctx, set, params.Artifact)
	if err != nil {
		return report, fail(KindArtifactInvalid, params.OutputPath, err)
	}
	report.Bytes = len(module)

	if params.DryRun {
		logger.Info().Int("bytes", report.Bytes).Msg("dry run, artifact not written")
		return report, nil
	}
	if err := writeAtomic(params.OutputPath, []byte(module)); err != nil {
		return report, fail(KindOutputWriteFailed, params.OutputPath, err)
	}
	logger.Info().Str("output", params.OutputPath).Int("bytes", report.Bytes).Msg("wrote artifact")
	return report, nil
}
