package pipeline

import (
	"dailyq/internal/bucket"
	"dailyq/internal/question"
)

// Report summarizes one pipeline run.
type Report struct {
	RunID        string
	InputPath    string
	OutputPath   string
	BucketCount  int
	DryRun       bool
	Input        int
	Valid        int
	Rejected     int
	Clamped      int
	Warnings     int
	Diagnostics  []question.Diagnostic
	Buckets      int
	MinPerBucket int
	MaxPerBucket int
	Bytes        int
}

// Rejections returns the diagnostics that dropped a record.
func (r Report) Rejections() []question.Diagnostic {
	return r.filter(question.SeverityRejection)
}

// WarningDiagnostics returns the diagnostics that corrected a kept record.
func (r Report) WarningDiagnostics() []question.Diagnostic {
	return r.filter(question.SeverityWarning)
}

func (r Report) filter(severity question.Severity) []question.Diagnostic {
	var out []question.Diagnostic
	for _, diag := range r.Diagnostics {
		if diag.Severity == severity {
			out = append(out, diag)
		}
	}
	return out
}

// summarize tallies validation and allocation results into a report.
func summarize(report Report, input int, records []question.Record, diags []question.Diagnostic, set bucket.Set) Report {
	report.Input = input
	report.Valid = len(records)
	report.Diagnostics = diags
	for _, diag := range diags {
		switch diag.Severity {
		case question.SeverityRejection:
			report.Rejected++
		case question.SeverityWarning:
			report.Warnings++
		}
		if diag.Reason == question.ReasonClampedAnswerIndex {
			report.Clamped++
		}
	}
	report.Buckets = len(set.Indexes())
	report.MinPerBucket, report.MaxPerBucket = set.Balance()
	return report
}
