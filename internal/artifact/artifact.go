// Package artifact renders a bucket set as a generated TypeScript module.
package artifact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"

	"dailyq/internal/bucket"
	"dailyq/internal/question"
)

// Header is the first line of every generated module.
const Header = "// Code generated by dailyq. DO NOT EDIT."

// ErrInvalidRecord indicates a record that breaks the validated shape.
var ErrInvalidRecord = errors.New("invalid record")

// Render renders the module for set into a string.
func Render(ctx context.Context, set bucket.Set, opts Options) (string, error) {
	var builder strings.Builder
	if err := Module(set, opts).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// Module returns a component that writes the module for set. Nothing is
// written when a record or option fails its checks.
func Module(set bucket.Set, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		opts := opts.withDefaults()
		if err := opts.validate(); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := writeModule(ctx, &buf, set, opts); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeModule(ctx context.Context, buf *bytes.Buffer, set bucket.Set, opts Options) error {
	e := &emitter{buf: buf}
	e.line(0, Header)
	e.line(0, "")
	e.line(0, fmt.Sprintf("import type { %s } from '%s';", opts.TypeName, opts.TypeImport))
	e.line(0, "")
	e.line(0, fmt.Sprintf("export const %s: Record<number, %s[]> = {", opts.ExportName, opts.TypeName))
	for _, index := range set.Indexes() {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.line(1, fmt.Sprintf("%d: [", index))
		for _, record := range set.Bucket(index) {
			if err := checkRecord(record, index); err != nil {
				return err
			}
			e.record(record)
		}
		e.line(1, "],")
	}
	e.line(0, "};")
	e.line(0, "")
	e.line(0, fmt.Sprintf("export const %s = (day: number): %s[] => {", opts.AccessorName, opts.TypeName))
	e.line(1, fmt.Sprintf("return %s[day] || [];", opts.ExportName))
	e.line(0, "};")
	return e.err
}

// checkRecord re-verifies the validated shape before anything is emitted.
func checkRecord(record question.Record, bucketIndex int) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: Q%d (%s): %s", ErrInvalidRecord, record.Index, record.ID, fmt.Sprintf(format, args...))
	}
	if record.ID == "" {
		return fail("missing id")
	}
	if record.Bucket != bucketIndex {
		return fail("placed in bucket %d but listed under %d", record.Bucket, bucketIndex)
	}
	if strings.TrimSpace(record.Text) == "" {
		return fail("empty text")
	}
	if len(record.Options) == 0 {
		return fail("no options")
	}
	for i, option := range record.Options {
		if strings.TrimSpace(option) == "" {
			return fail("option %d is blank", i)
		}
	}
	if record.CorrectAnswer < 0 || record.CorrectAnswer >= len(record.Options) {
		return fail("answer index %d out of range for %d options", record.CorrectAnswer, len(record.Options))
	}
	if strings.TrimSpace(record.Explanation) == "" {
		return fail("empty explanation")
	}
	return nil
}

// emitter writes indented lines and keeps the first quoting error.
type emitter struct {
	buf *bytes.Buffer
	err error
}

func (e *emitter) line(depth int, text string) {
	if e.err != nil {
		return
	}
	if text != "" {
		e.buf.WriteString(strings.Repeat("  ", depth))
		e.buf.WriteString(text)
	}
	e.buf.WriteByte('\n')
}

func (e *emitter) field(depth int, name, literal string) {
	e.line(depth, name+": "+literal+",")
}

func (e *emitter) str(s string) string {
	if e.err != nil {
		return ""
	}
	literal, err := Quote(s)
	if err != nil {
		e.err = err
		return ""
	}
	return literal
}

func (e *emitter) record(record question.Record) {
	e.line(2, "{")
	e.field(3, "id", e.str(record.ID))
	e.field(3, "day", fmt.Sprint(record.Bucket))
	e.field(3, "text", e.str(record.Text))
	e.line(3, "options: [")
	for _, option := range record.Options {
		e.line(4, e.str(option)+",")
	}
	e.line(3, "],")
	e.field(3, "correctAnswer", fmt.Sprint(record.CorrectAnswer))
	e.field(3, "explanation", e.str(record.Explanation))
	e.field(3, "category", e.str(record.Category))
	e.line(2, "},")
}

// Quote returns s as a double-quoted string literal that TypeScript and JSON
// both decode back to s. Invalid UTF-8 is refused rather than replaced.
func Quote(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: string %q is not valid UTF-8", ErrInvalidRecord, s)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("quote string: %w", err)
	}
	literal := strings.TrimSuffix(buf.String(), "\n")
	if strings.ContainsAny(literal, "\n\r\u2028\u2029") {
		return "", fmt.Errorf("%w: literal for %q spans lines", ErrInvalidRecord, s)
	}
	return literal, nil
}
