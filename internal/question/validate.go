package question

import (
	"fmt"
)

// Validate normalizes one raw question found at index. It returns false
// when the question is rejected; diagnostics describe every rejection or
// correction applied.
func Validate(raw Raw, index int) (Record, []Diagnostic, bool) {
	var diags []Diagnostic

	options, diag, ok := validateOptions(raw, index)
	if !ok {
		return Record{}, []Diagnostic{diag}, false
	}

	correct, diag, ok := validateAnswer(raw, index, len(options))
	if !ok {
		diags = append(diags, diag)
	}

	text := ""
	if value, ok := scalarText(raw[FieldText]); ok {
		text = NormalizeText(value)
	}
	if text == "" {
		text = DefaultText
		diags = append(diags, warning(index, ReasonDefaultedText, "missing text, defaulting to %q", DefaultText))
	}

	explanation := ""
	if value, ok := scalarText(raw[FieldExplanation]); ok {
		explanation = NormalizeText(value)
	}
	if explanation == "" {
		explanation = ExplanationPrefix + options[correct]
	}

	category := ""
	if value, ok := scalarText(raw[FieldCategory]); ok {
		category = NormalizeText(value)
	}
	if category == "" {
		category = DefaultCategory
	}

	return Record{
		Index:         index,
		Text:          text,
		Options:       options,
		CorrectAnswer: correct,
		Explanation:   explanation,
		Category:      category,
	}, diags, true
}

// validateOptions resolves the option list or explains why it is unusable.
func validateOptions(raw Raw, index int) ([]string, Diagnostic, bool) {
	value, present := raw[FieldOptions]
	if !present || value == nil {
		return nil, rejection(index, ReasonNoOptions, "no options"), false
	}
	items, isList := value.([]any)
	if !isList {
		return nil, rejection(index, ReasonNoOptions, "options is %s, not a list", kindOf(value)), false
	}
	if len(items) == 0 {
		return nil, rejection(index, ReasonNoOptions, "no options"), false
	}

	options := make([]string, 0, len(items))
	for i, item := range items {
		text, ok := scalarText(item)
		if !ok {
			return nil, rejection(index, ReasonBlankOption, "option %d is %s, not text", i, kindOf(item)), false
		}
		text = NormalizeText(text)
		if text == "" {
			return nil, rejection(index, ReasonBlankOption, "option %d is blank", i), false
		}
		options = append(options, text)
	}
	return options, Diagnostic{}, true
}

// validateAnswer coerces correctAnswer into [0, optionCount); anything else
// clamps to 0 with a warning.
func validateAnswer(raw Raw, index, optionCount int) (int, Diagnostic, bool) {
	value, present := raw[FieldCorrectAnswer]
	if !present || value == nil {
		return 0, warning(index, ReasonClampedAnswerIndex, "missing answer index, defaulting to 0"), false
	}
	n, ok := answerIndex(value)
	if !ok {
		return 0, warning(index, ReasonClampedAnswerIndex, "answer index %v is not an integer, defaulting to 0", describe(value)), false
	}
	if n < 0 || n >= optionCount {
		return 0, warning(index, ReasonClampedAnswerIndex, "invalid answer index %d for %d options, defaulting to 0", n, optionCount), false
	}
	return n, Diagnostic{}, true
}

// ValidateAll validates every element of a decoded document in input order.
// Elements that are not objects are rejected as malformed, and texts that
// repeat an earlier record are flagged without being dropped.
func ValidateAll(items []any) ([]Record, []Diagnostic) {
	records := make([]Record, 0, len(items))
	var diags []Diagnostic
	seen := map[string]int{}

	for index, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			diags = append(diags, rejection(index, ReasonMalformedRecord, "element is %s, not an object", kindOf(item)))
			continue
		}
		record, recordDiags, ok := Validate(raw, index)
		diags = append(diags, recordDiags...)
		if !ok {
			continue
		}
		if !hasReason(recordDiags, ReasonDefaultedText) {
			key := foldKey(record.Text)
			if first, dup := seen[key]; dup {
				diags = append(diags, warning(index, ReasonDuplicateText, "text repeats Q%d", first))
			} else {
				seen[key] = index
			}
		}
		records = append(records, record)
	}
	return records, diags
}

func hasReason(diags []Diagnostic, reason Reason) bool {
	for _, diag := range diags {
		if diag.Reason == reason {
			return true
		}
	}
	return false
}

// kindOf names the JSON kind of a decoded value for messages.
func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a bool"
	default:
		return "a number"
	}
}

func describe(value any) string {
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	if text, ok := scalarText(value); ok {
		return text
	}
	return kindOf(value)
}
