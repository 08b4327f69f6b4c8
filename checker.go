package passcheck

// Checker holds an ordered set of password policy rules. Rules are appended
// via the With* methods and evaluated in insertion order by Validate.
//
// A Checker is not safe for concurrent configuration; build it fully before
// sharing it. Validate itself is read-only, so a built Checker may be used
// from any number of goroutines at once.
type Checker struct {
	rules []rule
}

// New returns an empty Checker that accepts any password until rules are added.
func New() *Checker {
	return &Checker{}
}

// Default returns a Checker with a common baseline policy: at least 8
// characters, mixed case, a digit, and a special character.
func Default() *Checker {
	return New().
		WithMinLength(8).
		WithUpperLower().
		WithDigit().
		WithSpecialChar()
}

// WithMinLength requires the password to be at least min bytes long. A zero
// threshold is legal and always satisfied. The optional customMessage
// replaces the default violation text verbatim.
func (c *Checker) WithMinLength(min int, customMessage ...string) *Checker {
	return c.add(rule{kind: minLengthRule, threshold: min, message: firstMessage(customMessage)})
}

// WithMaxLength requires the password to be at most max bytes long.
func (c *Checker) WithMaxLength(max int, customMessage ...string) *Checker {
	return c.add(rule{kind: maxLengthRule, threshold: max, message: firstMessage(customMessage)})
}

// WithUpperLower requires at least one ASCII uppercase and one ASCII
// lowercase letter. Missing either produces a single combined violation.
func (c *Checker) WithUpperLower(customMessage ...string) *Checker {
	return c.add(rule{kind: upperLowerRule, message: firstMessage(customMessage)})
}

// WithDigit requires at least one ASCII decimal digit.
func (c *Checker) WithDigit(customMessage ...string) *Checker {
	return c.add(rule{kind: digitRule, message: firstMessage(customMessage)})
}

// WithSpecialChar requires at least one character from the fixed
// special-character set (!@#$%^&*()-_=+[]{}\|;:'",.<>/?).
func (c *Checker) WithSpecialChar(customMessage ...string) *Checker {
	return c.add(rule{kind: specialCharRule, message: firstMessage(customMessage)})
}

// WithNoRepeats rejects passwords containing a run of more than maxRepeats
// identical characters in a row.
func (c *Checker) WithNoRepeats(maxRepeats int, customMessage ...string) *Checker {
	return c.add(rule{kind: noRepeatsRule, threshold: maxRepeats, message: firstMessage(customMessage)})
}

// WithNoSequential rejects passwords containing a run of more than maxRun
// sequential characters, ascending or descending ("abcde", "98765").
func (c *Checker) WithNoSequential(maxRun int, customMessage ...string) *Checker {
	return c.add(rule{kind: noSequentialRule, threshold: maxRun, message: firstMessage(customMessage)})
}

// Validate evaluates every configured rule against password, in insertion
// order, without short-circuiting, so one call surfaces every problem at
// once. It returns nil when all rules pass, or a Violations error carrying
// one resolved message per violated rule.
func (c *Checker) Validate(password string) error {
	var violations Violations

	for _, r := range c.rules {
		if !r.check(password) {
			violations = append(violations, r.violationMessage())
		}
	}

	if len(violations) == 0 {
		return nil
	}

	return violations
}

func (c *Checker) add(r rule) *Checker {
	c.rules = append(c.rules, r)
	return c
}

func firstMessage(customMessage []string) string {
	if len(customMessage) == 0 {
		return ""
	}
	return customMessage[0]
}
