package element

import (
	"errors"
	"fmt"
)

// ErrKind identifies the class of configuration failure.
type ErrKind int

const (
	// ErrInvalidField - a parameter field is missing, non-finite or out of range
	ErrInvalidField ErrKind = iota
	// ErrSectionTooSmall - the section cannot fit the requested bars
	ErrSectionTooSmall
	// ErrPolicyViolation - requested totals conflict with detailing-code minimums
	ErrPolicyViolation
	// ErrInvalidBendGeometry - a bent-bar path would self-intersect or degenerate
	ErrInvalidBendGeometry
)

func (k ErrKind) String() string {
	switch k {
	case ErrInvalidField:
		return "invalid field"
	case ErrSectionTooSmall:
		return "section too small"
	case ErrPolicyViolation:
		return "policy violation"
	case ErrInvalidBendGeometry:
		return "invalid bend geometry"
	}
	return "configuration error"
}

// ConfigError is the single error taxonomy for the detailing engine.
// All failures are local-input validation failures detected before any
// geometry is emitted; they are recoverable by correcting the parameters.
type ConfigError struct {
	Kind  ErrKind
	Field string // offending field name, for ErrInvalidField
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %q: %s", e.Kind, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// InvalidField reports a bad parameter field.
func InvalidField(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Kind: ErrInvalidField, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// SectionTooSmall reports a section that cannot fit the requested bars.
func SectionTooSmall(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Kind: ErrSectionTooSmall, Msg: fmt.Sprintf(format, args...)}
}

// PolicyViolation reports a conflict with detailing-code minimums.
func PolicyViolation(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Kind: ErrPolicyViolation, Msg: fmt.Sprintf(format, args...)}
}

// InvalidBendGeometry reports a degenerate or self-intersecting bent bar.
func InvalidBendGeometry(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Kind: ErrInvalidBendGeometry, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a ConfigError of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}
