package question

// Raw is one untrusted input object as decoded from the source document.
type Raw = map[string]any

// Record is a validated, normalized question. ID and Bucket are zero until
// the allocator places the record.
type Record struct {
	ID            string
	Bucket        int
	Index         int
	Text          string
	Options       []string
	CorrectAnswer int
	Explanation   string
	Category      string
}

// Field names recognized on a Raw question.
const (
	FieldText          = "text"
	FieldOptions       = "options"
	FieldCorrectAnswer = "correctAnswer"
	FieldExplanation   = "explanation"
	FieldCategory      = "category"
)

// Defaults applied during validation.
const (
	DefaultText       = "Question"
	DefaultCategory   = "General"
	ExplanationPrefix = "Correct answer: "
)
