// Package errors defines the sentinel errors shared by the tools and the
// field-level error list returned by config and table validation.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalid matches any ValidationError through errors.Is.
	ErrInvalid       = errors.New("invalid")
	ErrNoArticlesDir = errors.New("articles directory not found")
	ErrNoMarkdown    = errors.New("no markdown files found")
)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// ValidationError collects every problem found in one pass so the user can
// fix them together.
type ValidationError struct {
	Items []FieldError
}

func (e ValidationError) Error() string {
	switch len(e.Items) {
	case 0:
		return "validation failed"
	case 1:
		return "validation failed: " + e.Items[0].Error()
	}
	parts := make([]string, len(e.Items))
	for i, item := range e.Items {
		parts[i] = item.Error()
	}
	return fmt.Sprintf("validation failed (%d problems): %s", len(e.Items), strings.Join(parts, "; "))
}

func (e *ValidationError) Add(field, msg string) {
	e.Items = append(e.Items, FieldError{Field: field, Message: msg})
}

// Prefixed returns a copy whose field names are qualified with prefix.
func (e ValidationError) Prefixed(prefix string) ValidationError {
	out := ValidationError{Items: make([]FieldError, len(e.Items))}
	for i, item := range e.Items {
		if item.Field != "" {
			item.Field = prefix + "." + item.Field
		} else {
			item.Field = prefix
		}
		out.Items[i] = item
	}
	return out
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func (e ValidationError) HasAny() bool {
	return len(e.Items) > 0
}
