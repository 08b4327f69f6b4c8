package passcheck

import (
	"errors"
	"strings"
)

// Violations is the ordered list of violation messages produced by a failed
// Validate call, one message per violated rule, in rule configuration order.
// A failed password is an expected outcome, not an operational error, so the
// list is the whole result; there is nothing to unwrap beyond it.
type Violations []string

func (v Violations) Error() string {
	if len(v) == 0 {
		return "password validation failed"
	}
	return "password validation failed: " + strings.Join(v, "; ")
}

// Messages returns the violation messages as a plain string slice.
func (v Violations) Messages() []string {
	return []string(v)
}

// ExtractViolations extracts Violations from an error, unwrapping as needed.
// It returns nil when err is nil or carries no Violations.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var violations Violations
	if errors.As(err, &violations) {
		return violations
	}

	return nil
}

// IsViolation reports whether err represents a password policy violation.
func IsViolation(err error) bool {
	if err == nil {
		return false
	}

	var violations Violations
	return errors.As(err, &violations)
}
