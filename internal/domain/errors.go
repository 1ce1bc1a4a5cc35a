package domain

import (
	"errors"
	"strings"
)

// Request outcome conditions. Handlers map these onto HTTP status codes.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("access denied")
	ErrNotFound         = errors.New("not found")
	ErrAuthFailed       = errors.New("invalid credentials")
)

// Validation rules reported in FieldError.Rule besides the validator tags.
const (
	RuleUnique     = "unique"
	RuleVocabulary = "vocabulary"
	RuleFormat     = "format"
	RuleUnknown    = "unknown"
)

// FieldError describes one failed constraint on a single field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError carries field-level detail and matches ErrValidationFailed
// under errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		part := f.Field + ": " + f.Rule
		if f.Param != "" {
			part += "=" + f.Param
		}
		parts = append(parts, part)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
