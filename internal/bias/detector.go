// Package bias detects biased language in job postings: gendered wording,
// coded age requirements, salary opacity, and location restrictions.
package bias

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/jobscout/internal/patterns"
)

// Type identifies one category of bias.
type Type string

// Bias categories.
const (
	GenderBias   Type = "gender_bias"
	AgeBias      Type = "age_bias"
	SalaryBias   Type = "salary_bias"
	LocationBias Type = "location_bias"
	NoBias       Type = "no_bias"
)

// scoreDamping grows the score denominator with indicator count so many weak
// hits do not run away to 1.0. Contractual constant; do not tune.
const scoreDamping = 0.3

// Result is the outcome of one bias analysis.
type Result struct {
	HasBias     bool                 `json:"has_bias"`
	Types       []Type               `json:"bias_types"`
	Score       float64              `json:"overall_bias_score"`
	Indicators  []patterns.Indicator `json:"indicators"`
	Suggestions []string             `json:"suggestions"`
	Explanation string               `json:"explanation"`
	Metadata    map[string]int       `json:"metadata"`
}

// group pairs a bias type with its rule set.
type group struct {
	biasType Type
	rules    []patterns.Rule
}

// Detector scans job postings for biased language. It is stateless after
// construction and safe for concurrent use.
type Detector struct {
	groups []group
}

// NewDetector builds a detector over the built-in pattern catalogue.
func NewDetector() *Detector {
	return &Detector{
		groups: []group{
			{GenderBias, genderRules},
			{AgeBias, ageRules},
			{SalaryBias, salaryRules},
			{LocationBias, locationRules},
		},
	}
}

// DetectBias analyzes a job posting for biased language. companyName is
// optional context and does not participate in scanning.
func (d *Detector) DetectBias(jobTitle, jobDescription, companyName string) (*Result, error) {
	if err := patterns.ValidateJobInput(jobTitle, jobDescription); err != nil {
		return nil, err
	}

	buffer := jobTitle + "\n" + jobDescription

	var all []patterns.Indicator
	byType := make(map[Type][]patterns.Indicator)
	for _, g := range d.groups {
		found := patterns.Scan(buffer, g.rules)
		if len(found) > 0 {
			byType[g.biasType] = found
			all = append(all, found...)
		}
	}

	result := &Result{
		HasBias:    len(all) > 0,
		Score:      aggregateScore(all),
		Indicators: all,
		Metadata:   patterns.CountBySeverityBand(all),
	}

	for _, g := range d.groups {
		if len(byType[g.biasType]) > 0 {
			result.Types = append(result.Types, g.biasType)
		}
	}
	if len(result.Types) == 0 {
		result.Types = []Type{NoBias}
	}

	result.Suggestions = buildSuggestions(byType)
	result.Explanation = buildExplanation(companyName, result.Types, byType)

	return result, nil
}

// aggregateScore computes the severity-weighted bias score:
// raw = sum(weight(severity) * confidence), damped by indicator count and
// clamped to 1.0, rounded to 3 decimals.
func aggregateScore(indicators []patterns.Indicator) float64 {
	if len(indicators) == 0 {
		return 0.0
	}

	raw := 0.0
	for _, ind := range indicators {
		raw += ind.Severity.Weight() * ind.Confidence
	}

	score := raw / (1.0 + float64(len(indicators))*scoreDamping)
	if score > 1.0 {
		score = 1.0
	}
	return math.Round(score*1000) / 1000
}

// buildSuggestions emits one remediation suggestion per bias type found.
func buildSuggestions(byType map[Type][]patterns.Indicator) []string {
	var suggestions []string

	if len(byType[GenderBias]) > 0 {
		suggestions = append(suggestions,
			"Replace gendered titles and pronouns with neutral alternatives (they/them, role names).")
	}
	if inds := byType[AgeBias]; len(inds) > 0 {
		msg := "Remove age-related requirements and coded phrases like 'recent graduate' or 'digital native'."
		for _, ind := range inds {
			if ind.Severity.Band() == "critical" {
				msg += " Direct age limits may violate the Age Discrimination in Employment Act (ADEA)."
				break
			}
		}
		suggestions = append(suggestions, msg)
	}
	if len(byType[SalaryBias]) > 0 {
		suggestions = append(suggestions,
			"Disclose a realistic salary range for the role.")
	}
	if len(byType[LocationBias]) > 0 {
		suggestions = append(suggestions,
			"Offer a remote or hybrid option, or state the concrete constraint behind the location requirement.")
	}

	return suggestions
}

// buildExplanation summarizes indicator counts by severity for each bias type.
func buildExplanation(companyName string, types []Type, byType map[Type][]patterns.Indicator) string {
	if len(byType) == 0 {
		if companyName != "" {
			return fmt.Sprintf("No bias indicators detected in the %s posting.", companyName)
		}
		return "No bias indicators detected."
	}

	parts := make([]string, 0, len(types))
	for _, t := range types {
		inds := byType[t]
		if len(inds) == 0 {
			continue
		}
		counts := patterns.CountBySeverityBand(inds)
		bands := make([]string, 0, len(counts))
		for _, band := range []string{"critical", "high", "medium", "low"} {
			if counts[band] > 0 {
				bands = append(bands, fmt.Sprintf("%d %s", counts[band], band))
			}
		}
		parts = append(parts, fmt.Sprintf("%s: %s", t, strings.Join(bands, ", ")))
	}

	return "Bias indicators found - " + strings.Join(parts, "; ")
}
