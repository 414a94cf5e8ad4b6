// Package scam detects fraudulent job postings with an ensemble of pattern
// classifiers derived from public fraud catalogues (FBI IC3, FTC), MLM
// recruitment phrasing, and phishing heuristics, balanced against positive
// legitimacy signals.
package scam

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/jobscout/internal/patterns"
)

// Confidence levels for the ensemble verdict.
const (
	ConfidenceVeryHigh = "very_high"
	ConfidenceHigh     = "high"
	ConfidenceMedium   = "medium"
	ConfidenceLow      = "low"
)

// minLegitimateSignals is how many legitimacy signals the legitimate-signals
// classifier needs to withhold its scam vote.
const minLegitimateSignals = 3

// Result is the outcome of one scam analysis.
type Result struct {
	IsScam            bool                 `json:"is_scam"`
	Probability       float64              `json:"scam_probability"`
	ScamType          string               `json:"scam_type"`
	Confidence        string               `json:"confidence"`
	Indicators        []patterns.Indicator `json:"indicators"`
	LegitimateSignals []string             `json:"legitimate_signals"`
	Explanation       string               `json:"explanation"`
	Recommendations   []string             `json:"recommendations"`
	Votes             map[string]bool      `json:"classifier_votes"`
}

// classifier is one named pattern classifier in the ensemble.
type classifier struct {
	name  string
	rules []patterns.Rule
}

// Detector is the ensemble scam detector. Stateless after construction and
// safe for concurrent use.
type Detector struct {
	classifiers []classifier
	legitRules  []patterns.Rule
}

// NewDetector builds a detector over the built-in classifier catalogues.
func NewDetector() *Detector {
	return &Detector{
		classifiers: []classifier{
			{"fbi", fbiRules},
			{"ftc", ftcRules},
			{"mlm", mlmRules},
			{"phishing", phishingRules},
		},
		legitRules: legitimateRules,
	}
}

// DetectScam analyzes a job posting for scam markers. companyName and
// emailDomain are optional; a free-mail recruiting domain adds a phishing
// indicator.
func (d *Detector) DetectScam(jobTitle, jobDescription, companyName, emailDomain string) (*Result, error) {
	if err := patterns.ValidateJobInput(jobTitle, jobDescription); err != nil {
		return nil, err
	}

	buffer := jobTitle + "\n" + jobDescription

	votes := make(map[string]bool, len(d.classifiers)+1)
	var indicators []patterns.Indicator
	for _, c := range d.classifiers {
		found := patterns.Scan(buffer, c.rules)
		votes[c.name] = len(found) > 0
		indicators = append(indicators, found...)
	}

	if ind := checkEmailDomain(emailDomain); ind != nil {
		indicators = append(indicators, *ind)
		votes["phishing"] = true
	}

	legitimate := collectLegitimateSignals(buffer, d.legitRules)
	// Absence of legitimacy counts as a scam vote.
	votes["legitimate_signals"] = len(legitimate) < minLegitimateSignals

	probability := ensembleProbability(votes, indicators, len(legitimate))
	isScam := probability >= 0.5

	result := &Result{
		IsScam:            isScam,
		Probability:       probability,
		ScamType:          dominantType(indicators),
		Confidence:        confidenceLevel(probability, len(indicators)),
		Indicators:        indicators,
		LegitimateSignals: legitimate,
		Votes:             votes,
	}
	result.Explanation = buildExplanation(result, companyName)
	result.Recommendations = buildRecommendations(result)

	return result, nil
}

// ensembleProbability combines classifier votes with indicator severity, then
// applies the severity floors and legitimacy damping. The thresholds are
// contractual constants.
func ensembleProbability(votes map[string]bool, indicators []patterns.Indicator, legitimateCount int) float64 {
	cast := 0
	for _, v := range votes {
		if v {
			cast++
		}
	}
	voteProbability := float64(cast) / float64(len(votes))

	probability := voteProbability
	if n := len(indicators); n > 0 {
		totalSeverity := 0
		for _, ind := range indicators {
			totalSeverity += int(ind.Severity)
		}
		severityWeight := math.Min(1.0, float64(totalSeverity)/float64(n*5))
		probability = 0.5*voteProbability + 0.5*severityWeight
	}

	// Severity floors: a single near-certain indicator dominates the vote.
	maxSeverity := patterns.Severity(0)
	for _, ind := range indicators {
		if ind.Severity > maxSeverity {
			maxSeverity = ind.Severity
		}
	}
	if maxSeverity >= 9 && probability < 0.9 {
		probability = 0.9
	} else if maxSeverity >= 8 && probability < 0.8 {
		probability = 0.8
	}

	// Strong legitimacy evidence dampens the verdict.
	switch {
	case legitimateCount >= 5:
		probability *= 0.5
	case legitimateCount >= minLegitimateSignals:
		probability *= 0.7
	}

	return math.Round(probability*1000) / 1000
}

// collectLegitimateSignals returns the distinct matched strings of positive
// legitimacy patterns, in rule order.
func collectLegitimateSignals(text string, rules []patterns.Rule) []string {
	var signals []string
	seen := make(map[string]bool)
	for i := range rules {
		m := rules[i].Regex.FindString(text)
		if m == "" {
			continue
		}
		key := strings.ToLower(m)
		if !seen[key] {
			seen[key] = true
			signals = append(signals, m)
		}
	}
	return signals
}

// dominantType returns the most frequent indicator type (ties broken by first
// occurrence), or TypeLegitimate with no indicators.
func dominantType(indicators []patterns.Indicator) string {
	if len(indicators) == 0 {
		return TypeLegitimate
	}

	counts := make(map[string]int)
	var order []string
	for _, ind := range indicators {
		if counts[ind.Type] == 0 {
			order = append(order, ind.Type)
		}
		counts[ind.Type]++
	}

	best := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best
}

// confidenceLevel bands the ensemble verdict.
func confidenceLevel(probability float64, indicatorCount int) string {
	switch {
	case probability >= 0.9 && indicatorCount >= 3:
		return ConfidenceVeryHigh
	case probability >= 0.75 && indicatorCount >= 2:
		return ConfidenceHigh
	case probability >= 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// freeMailDomains are consumer mail providers that legitimate corporate
// recruiting rarely uses.
var freeMailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
	"aol.com":     true,
	"mail.ru":     true,
}

// checkEmailDomain flags recruiting conducted from a free mail provider.
func checkEmailDomain(domain string) *patterns.Indicator {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" || !freeMailDomains[domain] {
		return nil
	}
	return &patterns.Indicator{
		RuleName:    "free-mail-recruiting",
		Type:        TypePhishing,
		Matched:     domain,
		Context:     domain,
		Severity:    7,
		Confidence:  0.7,
		Explanation: "Recruiting from a free mail provider instead of a company domain",
		Alternative: "Verify the recruiter through the company's official site",
		Source:      sourcePhishing,
	}
}

func buildExplanation(r *Result, companyName string) string {
	subject := "This posting"
	if companyName != "" {
		subject = fmt.Sprintf("The %s posting", companyName)
	}
	if len(r.Indicators) == 0 {
		return fmt.Sprintf("%s shows no scam indicators and %d legitimacy signals.",
			subject, len(r.LegitimateSignals))
	}
	return fmt.Sprintf("%s matched %d scam indicator(s), dominant type %s, against %d legitimacy signal(s); ensemble probability %.3f.",
		subject, len(r.Indicators), r.ScamType, len(r.LegitimateSignals), r.Probability)
}

func buildRecommendations(r *Result) []string {
	if !r.IsScam {
		if len(r.Indicators) > 0 {
			return []string{"Minor concerns found; verify the employer through independent sources before applying."}
		}
		return []string{"No action needed; posting looks legitimate."}
	}

	recs := []string{"Do not share personal or financial information with this poster."}
	seen := make(map[string]bool)
	for _, ind := range r.Indicators {
		if ind.Alternative != "" && !seen[ind.Alternative] {
			seen[ind.Alternative] = true
			recs = append(recs, ind.Alternative)
		}
	}
	return recs
}
