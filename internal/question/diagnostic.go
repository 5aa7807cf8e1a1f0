package question

import "fmt"

// Reason classifies a per-record diagnostic.
type Reason string

const (
	// ReasonNoOptions rejects a record whose options are absent, not a list, or empty.
	ReasonNoOptions Reason = "NoOptions"
	// ReasonBlankOption rejects a record with an empty or non-scalar option.
	ReasonBlankOption Reason = "BlankOption"
	// ReasonMalformedRecord rejects a document element that is not an object.
	ReasonMalformedRecord Reason = "MalformedRecord"
	// ReasonClampedAnswerIndex warns that correctAnswer was reset to 0.
	ReasonClampedAnswerIndex Reason = "ClampedAnswerIndex"
	// ReasonDefaultedText warns that a missing text was replaced by DefaultText.
	ReasonDefaultedText Reason = "DefaultedText"
	// ReasonDuplicateText warns that the text repeats an earlier record.
	ReasonDuplicateText Reason = "DuplicateText"
)

// Severity tells whether a diagnostic dropped the record.
type Severity string

const (
	SeverityWarning   Severity = "warning"
	SeverityRejection Severity = "rejection"
)

// Diagnostic reports one issue with the input element at Index.
type Diagnostic struct {
	Index    int
	Reason   Reason
	Severity Severity
	Message  string
}

// String renders a diagnostic as a single report line.
func (d Diagnostic) String() string {
	return fmt.Sprintf("Q%d %s %s: %s", d.Index, d.Severity, d.Reason, d.Message)
}

func rejection(index int, reason Reason, format string, args ...any) Diagnostic {
	return Diagnostic{Index: index, Reason: reason, Severity: SeverityRejection, Message: fmt.Sprintf(format, args...)}
}

func warning(index int, reason Reason, format string, args ...any) Diagnostic {
	return Diagnostic{Index: index, Reason: reason, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}
