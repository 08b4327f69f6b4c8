package passcheck

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// specialChars is the fixed set of characters the special-character rule
// recognizes. Membership is by exact match; no other punctuation counts.
const specialChars = `!@#$%^&*()-_=+[]{}\|;:'",.<>/?`

type ruleKind int

const (
	minLengthRule ruleKind = iota
	maxLengthRule
	upperLowerRule
	digitRule
	specialCharRule
	noRepeatsRule
	noSequentialRule
)

// rule is a single password policy condition. threshold carries the numeric
// parameter for the kinds that have one; message overrides the default
// violation text when non-empty. A rule is never mutated after construction.
type rule struct {
	kind      ruleKind
	threshold int
	message   string
}

func (r rule) check(password string) bool {
	switch r.kind {
	case minLengthRule:
		return len(password) >= r.threshold
	case maxLengthRule:
		return len(password) <= r.threshold
	case upperLowerRule:
		return uppercaseRegex.MatchString(password) && lowercaseRegex.MatchString(password)
	case digitRule:
		return digitRegex.MatchString(password)
	case specialCharRule:
		return strings.ContainsAny(password, specialChars)
	case noRepeatsRule:
		return longestRepeatRun(password) <= r.threshold
	case noSequentialRule:
		return !hasSequentialRun(password, r.threshold)
	default:
		return true
	}
}

// violationMessage resolves the message for a violated rule: the custom
// message verbatim when one was configured, otherwise the default text.
// Defaults are built here, at violation time, so the threshold interpolation
// never runs for rules that pass or carry a custom message.
func (r rule) violationMessage() string {
	if r.message != "" {
		return r.message
	}

	switch r.kind {
	case minLengthRule:
		return fmt.Sprintf("Password must be at least %d characters", r.threshold)
	case maxLengthRule:
		return fmt.Sprintf("Password must be at most %d characters", r.threshold)
	case upperLowerRule:
		return "Password must include both uppercase and lowercase letters"
	case digitRule:
		return "Password must include at least one number"
	case specialCharRule:
		return "Password must include at least one special character"
	case noRepeatsRule:
		return fmt.Sprintf("Password must not repeat a character more than %d times in a row", r.threshold)
	case noSequentialRule:
		return fmt.Sprintf("Password must not contain more than %d sequential characters", r.threshold)
	default:
		return "Password does not meet the policy"
	}
}

func longestRepeatRun(password string) int {
	currentChar := rune(0)
	count := 0
	maxCount := 0

	for _, char := range password {
		if char == currentChar {
			count++
		} else {
			if count > maxCount {
				maxCount = count
			}
			currentChar = char
			count = 1
		}
	}

	if count > maxCount {
		maxCount = count
	}

	return maxCount
}

// hasSequentialRun reports whether password contains a run of more than
// maxRun characters where each neighbor differs by exactly one code point,
// in either direction ("abcde", "54321").
func hasSequentialRun(password string, maxRun int) bool {
	if len(password) <= maxRun {
		return false
	}

	runes := []rune(password)
	runLength := 1

	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1]+1 || runes[i] == runes[i-1]-1 {
			runLength++
			if runLength > maxRun {
				return true
			}
		} else {
			runLength = 1
		}
	}

	return false
}
