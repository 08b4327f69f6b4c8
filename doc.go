// Package passcheck provides a small, composable password policy checker. A
// caller assembles a Checker from individual rules (minimum length, character
// class requirements, repetition limits) through a fluent configuration
// surface, then validates candidate passwords against the whole policy in one
// call, collecting every violation rather than stopping at the first.
//
// # Architecture
//
// A Checker owns an ordered, append-only list of rules; each With* method
// adds exactly one rule and returns the Checker so calls chain. Validate
// folds over the rules in insertion order and aggregates the failures into a
// Violations slice that satisfies the error interface, so callers can
// distinguish "password rejected" from operational errors with a plain nil
// check and still present the complete checklist of problems. The package
// holds no global state and performs no I/O; a fully built Checker is safe
// for concurrent Validate calls.
//
// # Usage
//
//	checker := passcheck.New().
//	    WithMinLength(8).
//	    WithUpperLower().
//	    WithDigit().
//	    WithSpecialChar()
//
//	if err := checker.Validate(candidate); err != nil {
//	    for _, msg := range passcheck.ExtractViolations(err) {
//	        fmt.Println(msg)
//	    }
//	}
//
// Each rule ships a default violation message; an optional custom message
// supplied at configuration time replaces the default verbatim.
//
// # Error Handling
//
// A rejected password is an expected, data-modeled outcome: Validate returns
// a Violations value (ordered messages, one per violated rule) rather than a
// wrapped operational error. Violations supports errors.As, and the
// ExtractViolations and IsViolation helpers cover the common call sites.
//
// # Character Classification
//
// All classification is ASCII: uppercase means A-Z, digits mean 0-9, and the
// special-character rule matches a fixed 30-character set. Lengths are
// measured in bytes.
package passcheck
