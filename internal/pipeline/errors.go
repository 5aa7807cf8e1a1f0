package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal pipeline error.
type Kind string

const (
	KindInputNotFound      Kind = "InputNotFound"
	KindInputMalformed     Kind = "InputMalformed"
	KindOutputWriteFailed  Kind = "OutputWriteFailed"
	KindInvalidBucketCount Kind = "InvalidBucketCount"
	KindArtifactInvalid    Kind = "ArtifactInvalid"
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrInputNotFound      = errors.New("input not found")
	ErrInputMalformed     = errors.New("input malformed")
	ErrOutputWriteFailed  = errors.New("output write failed")
	ErrInvalidBucketCount = errors.New("invalid bucket count")
	ErrArtifactInvalid    = errors.New("artifact invalid")
)

var sentinels = map[Kind]error{
	KindInputNotFound:      ErrInputNotFound,
	KindInputMalformed:     ErrInputMalformed,
	KindOutputWriteFailed:  ErrOutputWriteFailed,
	KindInvalidBucketCount: ErrInvalidBucketCount,
	KindArtifactInvalid:    ErrArtifactInvalid,
}

// Error is a fatal pipeline failure. No artifact is written when Run
// returns one.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := sentinels[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func fail(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
