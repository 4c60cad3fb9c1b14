// Package validation evaluates declarative per-field constraint rules against
// an aggregate's current in-memory state. Each aggregate declares its schema
// in its Validate method; the engine reports every violated rule in one
// aggregated error rather than stopping at the first.
package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindEmail
	kindUUID
	kindDecimal
	kindInt
	kindURL
)

// FieldRule is a declarative constraint set for one field. Build it fluently:
//
//	validation.Field("name", validation.String(s.Name)).Required().MaxLength(120)
//
// A nil value pointer means the field is absent, which is reported
// distinguishably from a present-but-blank value.
type FieldRule struct {
	field       string
	value       *string
	required    bool
	minLen      int
	maxLen      int
	kind        fieldKind
	oneOf       []string
	nonNegative bool
	minInt      *int
	maxInt      *int
}

// Field starts a rule for the named field with its current value
func Field(name string, value *string) *FieldRule {
	return &FieldRule{field: name, value: value}
}

// String adapts a plain string value for a rule. An empty string is a
// present-but-blank value, not an absent one.
func String(s string) *string {
	return &s
}

// ID adapts a UUID field for a rule. The nil UUID is the "not yet assigned"
// sentinel and is treated as absent.
func ID(id uuid.UUID) *string {
	if id == uuid.Nil {
		return nil
	}
	s := id.String()
	return &s
}

// Int adapts an integer field for a rule
func Int(name string, value int) *FieldRule {
	s := fmt.Sprintf("%d", value)
	return &FieldRule{field: name, value: &s, kind: kindInt}
}

// Required marks the field as mandatory
func (r *FieldRule) Required() *FieldRule {
	r.required = true
	return r
}

// MinLength sets the minimum length
func (r *FieldRule) MinLength(n int) *FieldRule {
	r.minLen = n
	return r
}

// MaxLength sets the maximum length
func (r *FieldRule) MaxLength(n int) *FieldRule {
	r.maxLen = n
	return r
}

// Email requires a well-formed email address
func (r *FieldRule) Email() *FieldRule {
	r.kind = kindEmail
	return r
}

// UUID requires a well-formed UUID
func (r *FieldRule) UUID() *FieldRule {
	r.kind = kindUUID
	return r
}

// Decimal requires a parseable decimal number
func (r *FieldRule) Decimal() *FieldRule {
	r.kind = kindDecimal
	return r
}

// URL requires an http(s) URL shape
func (r *FieldRule) URL() *FieldRule {
	r.kind = kindURL
	return r
}

// NonNegative forbids negative decimal values
func (r *FieldRule) NonNegative() *FieldRule {
	r.nonNegative = true
	return r
}

// Min sets the minimum for integer fields
func (r *FieldRule) Min(n int) *FieldRule {
	r.minInt = &n
	return r
}

// Max sets the maximum for integer fields
func (r *FieldRule) Max(n int) *FieldRule {
	r.maxInt = &n
	return r
}

// OneOf restricts the value to a closed set
func (r *FieldRule) OneOf(values ...string) *FieldRule {
	r.oneOf = values
	return r
}

// Validate evaluates every rule and returns nil or one aggregated *Error
// listing all violations in declaration order.
func Validate(rules ...*FieldRule) error {
	var violations []FieldError
	for _, rule := range rules {
		violations = append(violations, rule.evaluate()...)
	}
	if len(violations) == 0 {
		return nil
	}
	return NewError(violations)
}

func (r *FieldRule) evaluate() []FieldError {
	if r.value == nil {
		if r.required {
			return []FieldError{r.violation("%s is required")}
		}
		return nil
	}

	value := strings.TrimSpace(*r.value)
	if value == "" {
		if r.required {
			return []FieldError{r.violation("%s must not be blank")}
		}
		return nil
	}

	var violations []FieldError

	if r.minLen > 0 && len(value) < r.minLen {
		violations = append(violations,
			r.violationf("%s must be at least %d characters", r.minLen))
	}
	if r.maxLen > 0 && len(value) > r.maxLen {
		violations = append(violations,
			r.violationf("%s must not exceed %d characters", r.maxLen))
	}

	switch r.kind {
	case kindEmail:
		if !isEmail(value) {
			violations = append(violations, r.violation("%s must be a valid email address"))
		}
	case kindUUID:
		if _, err := uuid.Parse(value); err != nil {
			violations = append(violations, r.violation("%s must be a valid UUID"))
		}
	case kindDecimal:
		d, err := decimal.NewFromString(value)
		if err != nil {
			violations = append(violations, r.violation("%s must be a decimal number"))
		} else if r.nonNegative && d.IsNegative() {
			violations = append(violations, r.violation("%s must not be negative"))
		}
	case kindInt:
		violations = append(violations, r.evaluateInt(value)...)
	case kindURL:
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			violations = append(violations, r.violation("%s must be an http(s) URL"))
		}
	}

	if len(r.oneOf) > 0 && !contains(r.oneOf, value) {
		violations = append(violations,
			r.violationf("%s must be one of: %s", strings.Join(r.oneOf, ", ")))
	}

	return violations
}

func (r *FieldRule) evaluateInt(value string) []FieldError {
	d, err := decimal.NewFromString(value)
	if err != nil || !d.IsInteger() {
		return []FieldError{r.violation("%s must be a whole number")}
	}
	n := int(d.IntPart())

	var violations []FieldError
	if r.minInt != nil && n < *r.minInt {
		violations = append(violations, r.violationf("%s must be at least %d", *r.minInt))
	}
	if r.maxInt != nil && n > *r.maxInt {
		violations = append(violations, r.violationf("%s must not exceed %d", *r.maxInt))
	}
	return violations
}

func (r *FieldRule) violation(format string) FieldError {
	return FieldError{Field: r.field, Message: fmt.Sprintf(format, r.field)}
}

func (r *FieldRule) violationf(format string, args ...any) FieldError {
	all := append([]any{r.field}, args...)
	return FieldError{Field: r.field, Message: fmt.Sprintf(format, all...)}
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
