package validation

import "strings"

// FieldError is one violated rule: the offending field and its message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates every violated rule of one validation pass. Callers always
// receive the complete list, never just the first violation.
type Error struct {
	Violations []FieldError `json:"violations"`
}

// Error implements the error interface. Messages are joined by ". " with a
// single trailing period; UI layers rely on this exact format.
func (e *Error) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, ". ") + "."
}

// NewError creates a validation error from the given violations
func NewError(violations []FieldError) *Error {
	return &Error{Violations: violations}
}

// IsValidationError reports whether err is an aggregated validation error
func IsValidationError(err error) bool {
	_, ok := err.(*Error)
	return ok
}
