package artifact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidOptions indicates generator options that would not produce valid TypeScript.
var ErrInvalidOptions = errors.New("invalid artifact options")

// Options names the symbols the generated module declares.
type Options struct {
	TypeName     string
	TypeImport   string
	ExportName   string
	AccessorName string
}

// DefaultOptions matches the frontend's question module layout.
func DefaultOptions() Options {
	return Options{
		TypeName:     "Question",
		TypeImport:   "../types/question.types",
		ExportName:   "MOCK_QUESTIONS",
		AccessorName: "getQuestionsForBucket",
	}
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// withDefaults fills blank fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.TypeName == "" {
		o.TypeName = def.TypeName
	}
	if o.TypeImport == "" {
		o.TypeImport = def.TypeImport
	}
	if o.ExportName == "" {
		o.ExportName = def.ExportName
	}
	if o.AccessorName == "" {
		o.AccessorName = def.AccessorName
	}
	return o
}

func (o Options) validate() error {
	names := []struct{ field, value string }{
		{"type name", o.TypeName},
		{"export name", o.ExportName},
		{"accessor name", o.AccessorName},
	}
	for _, name := range names {
		if !identifierPattern.MatchString(name.value) {
			return fmt.Errorf("%w: %s %q is not an identifier", ErrInvalidOptions, name.field, name.value)
		}
	}
	if strings.ContainsAny(o.TypeImport, "'\\\r\n") {
		return fmt.Errorf("%w: type import %q cannot be quoted", ErrInvalidOptions, o.TypeImport)
	}
	return nil
}
