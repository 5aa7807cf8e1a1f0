package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"dailyq/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

var (
	validateOnce sync.Once
	structRules  *validator.Validate
)

// rules returns the shared validator keyed by yaml field names.
func rules() *validator.Validate {
	validateOnce.Do(func() {
		structRules = validator.New(validator.WithRequiredStructEnabled())
		structRules.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return structRules
}

// Validate checks field rules and cross-field constraints of a config.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}

	if err := rules().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fieldErr := range fieldErrs {
			collector.add(fieldErr.Field(), describeRule(fieldErr))
		}
	}

	if cfg.Input != "" && cfg.Output != "" && filepath.Clean(cfg.Input) == filepath.Clean(cfg.Output) {
		collector.add("output", "must differ from input")
	}

	return collector.result()
}

// describeRule turns a failed struct tag into a readable message.
func describeRule(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "eq":
		if fieldErr.Field() == "version" {
			return fmt.Sprintf("unsupported version %v", fieldErr.Value())
		}
		return fmt.Sprintf("must equal %s", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %q rule", fieldErr.Tag())
	}
}

// issueCollector keeps the first issue reported for each field.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	for _, issue := range c.issues {
		if issue.Field == field {
			return
		}
	}
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}
