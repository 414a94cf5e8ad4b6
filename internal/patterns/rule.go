// Package patterns provides the shared pattern-rule and indicator model used
// by all text detectors: weighted regex rules, the case-insensitive scan
// primitive, and input validation for free-text analysis.
package patterns

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Severity is an integer 1-10 severity scale shared by all detectors.
// Named bands are derived by comparison so that detectors using enum-style
// levels (critical/high/medium/low) and detectors using raw integers share
// one aggregation implementation.
type Severity int

// Canonical severities for rules authored with enum-style levels.
const (
	SeverityLow      Severity = 2
	SeverityMedium   Severity = 5
	SeverityHigh     Severity = 7
	SeverityCritical Severity = 9
)

// Band thresholds.
const (
	criticalThreshold = 9
	highThreshold     = 7
	mediumThreshold   = 4
)

// Band returns the named severity band for this severity value.
func (s Severity) Band() string {
	switch {
	case s >= criticalThreshold:
		return "critical"
	case s >= highThreshold:
		return "high"
	case s >= mediumThreshold:
		return "medium"
	default:
		return "low"
	}
}

// Weight returns the aggregation weight for this severity's band.
// These constants are contractual; scores depend on them exactly.
func (s Severity) Weight() float64 {
	switch s.Band() {
	case "critical":
		return 1.0
	case "high":
		return 0.6
	case "medium":
		return 0.3
	default:
		return 0.15
	}
}

// Validator is an optional post-match check that runs after a raw regex hit
// before an Indicator is emitted. The argument is the full submatch slice
// (match[0] is the whole match). Returning false suppresses the hit.
type Validator func(match []string) bool

// Rule is one named regex pattern with its severity, confidence weight,
// explanation and suggested alternative. Rules are compiled at load time and
// never mutated at runtime.
type Rule struct {
	Name        string
	Type        string
	Regex       *regexp.Regexp
	Severity    Severity
	Confidence  float64
	Explanation string
	Alternative string
	Source      string
	Validate    Validator
}

// MustRule compiles a case-insensitive rule from expr.
// Panics on a malformed expression; rule catalogues are static and validated
// at load time, not at scan time.
func MustRule(name, ruleType, expr string, severity Severity, confidence float64, explanation, alternative, source string) Rule {
	return Rule{
		Name:        name,
		Type:        ruleType,
		Regex:       regexp.MustCompile("(?i)" + expr),
		Severity:    severity,
		Confidence:  confidence,
		Explanation: explanation,
		Alternative: alternative,
		Source:      source,
	}
}

// WithValidator returns a copy of the rule with a post-match validator attached.
func (r Rule) WithValidator(v Validator) Rule {
	r.Validate = v
	return r
}

// InputError reports invalid detector input (empty or oversized text).
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Message)
}

// MaxTextLength is the hard upper bound on analyzed description text.
// Oversized input is rejected, never truncated.
const MaxTextLength = 50000

// ValidateText checks that a required text field is non-empty and no longer
// than MaxTextLength characters.
func ValidateText(field, text string) error {
	if text == "" {
		return &InputError{Field: field, Message: "must not be empty"}
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return &InputError{
			Field:   field,
			Message: fmt.Sprintf("exceeds maximum length of %d characters", MaxTextLength),
		}
	}
	return nil
}

// ValidateJobInput checks the common detector preconditions: non-empty title
// and description, and description no longer than MaxTextLength characters.
func ValidateJobInput(title, description string) error {
	if title == "" {
		return &InputError{Field: "job_title", Message: "must not be empty"}
	}
	return ValidateText("job_description", description)
}
