// Package quality scores job postings and resumes on weighted quality
// dimensions. Each dimension starts from a fixed baseline, is adjusted
// additively by detected issues, and is clamped to [0,100]; the overall score
// is the weighted sum of dimensions.
package quality

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/jobscout/internal/patterns"
)

// Level bands an overall quality score.
type Level string

// Quality levels. Suspicious overrides the numeric bands whenever a red flag
// with severity >= 8 is present.
const (
	LevelExcellent  Level = "excellent"
	LevelGood       Level = "good"
	LevelFair       Level = "fair"
	LevelPoor       Level = "poor"
	LevelSuspicious Level = "suspicious"
)

// Banding thresholds and the red-flag severity that forces SUSPICIOUS.
const (
	excellentThreshold = 85.0
	goodThreshold      = 70.0
	fairThreshold      = 50.0
	suspiciousSeverity = 8
	recommendThreshold = 70.0
)

// Job quality dimension weights. They sum to 1.0.
const (
	legitimacyWeight   = 0.30
	descriptionWeight  = 0.25
	salaryWeight       = 0.20
	requirementsWeight = 0.15
	companyWeight      = 0.10
)

// Dimension is one named component of a quality score.
type Dimension struct {
	Name   string   `json:"name"`
	Score  float64  `json:"score"`
	Weight float64  `json:"weight"`
	Notes  []string `json:"notes,omitempty"`
}

// JobScore is the outcome of one job-posting quality analysis.
type JobScore struct {
	Overall         float64              `json:"overall_score"`
	Level           Level                `json:"quality_level"`
	Dimensions      []Dimension          `json:"dimensions"`
	RedFlags        []patterns.Indicator `json:"red_flags"`
	Recommendations []string             `json:"recommendations"`
	Explanation     string               `json:"explanation"`
}

// IsRecommended reports whether the posting is worth pursuing: the overall
// score clears the threshold AND no near-critical red flag exists. A high
// score never overrides a severity-8+ red flag.
func (s *JobScore) IsRecommended() bool {
	if s.Overall < recommendThreshold {
		return false
	}
	for _, rf := range s.RedFlags {
		if rf.Severity >= suspiciousSeverity {
			return false
		}
	}
	return true
}

// JobInput carries the posting fields under analysis. Title and Description
// are required; the rest are optional context.
type JobInput struct {
	Title       string
	Company     string
	Description string
	SalaryRange string
	Location    string
}

// JobDetector scores job postings. Stateless and safe for concurrent use.
type JobDetector struct{}

// NewJobDetector returns a job-posting quality detector.
func NewJobDetector() *JobDetector {
	return &JobDetector{}
}

// Analyze scores a job posting across the five quality dimensions.
func (d *JobDetector) Analyze(in JobInput) (*JobScore, error) {
	if err := patterns.ValidateJobInput(in.Title, in.Description); err != nil {
		return nil, err
	}

	buffer := in.Title + "\n" + in.Description
	redFlags := patterns.Scan(buffer, redFlagRules)

	dims := []Dimension{
		legitimacyDimension(redFlags),
		descriptionDimension(in.Description),
		salaryDimension(in.Description, in.SalaryRange),
		requirementsDimension(buffer),
		companyDimension(in.Company, in.Description),
	}

	overall := 0.0
	for _, dim := range dims {
		overall += dim.Score * dim.Weight
	}
	overall = round1(overall)

	score := &JobScore{
		Overall:    overall,
		Level:      jobLevel(overall, redFlags),
		Dimensions: dims,
		RedFlags:   redFlags,
	}
	score.Recommendations = jobRecommendations(dims, redFlags)
	score.Explanation = fmt.Sprintf("Overall %.1f (%s): %d red flag(s); weakest dimension %q.",
		overall, score.Level, len(redFlags), weakestDimension(dims))

	return score, nil
}

// jobLevel bands the score. The suspicious override runs before the numeric
// thresholds.
func jobLevel(overall float64, redFlags []patterns.Indicator) Level {
	for _, rf := range redFlags {
		if rf.Severity >= suspiciousSeverity {
			return LevelSuspicious
		}
	}
	switch {
	case overall >= excellentThreshold:
		return LevelExcellent
	case overall >= goodThreshold:
		return LevelGood
	case overall >= fairThreshold:
		return LevelFair
	default:
		return LevelPoor
	}
}

// legitimacyDimension starts at 100 and deducts 8 points per red-flag
// severity unit.
func legitimacyDimension(redFlags []patterns.Indicator) Dimension {
	score := 100.0
	var notes []string
	for _, rf := range redFlags {
		score -= float64(rf.Severity) * 8
		notes = append(notes, rf.Explanation)
	}
	return Dimension{Name: "legitimacy", Score: clamp(score), Weight: legitimacyWeight, Notes: notes}
}

// descriptionDimension starts at 50 and rewards substance: enough text,
// bullet structure, and named sections. Buzzwords deduct.
func descriptionDimension(description string) Dimension {
	score := 50.0
	var notes []string

	switch {
	case len(description) < 100:
		score -= 15
		notes = append(notes, "description is too short to evaluate the role")
	case len(description) >= 1000:
		score += 25
	case len(description) >= 300:
		score += 15
	}

	if countBulletLines(description) >= 3 {
		score += 10
	}
	if sectionHeaderRe.MatchString(description) {
		score += 10
	}
	if capsRatio(description) > 0.3 {
		score -= 10
		notes = append(notes, "excessive capitalization")
	}

	buzzwords := patterns.Scan(description, buzzwordRules)
	deduction := float64(len(buzzwords)) * 5
	if deduction > 15 {
		deduction = 15
	}
	score -= deduction
	for _, b := range buzzwords {
		notes = append(notes, fmt.Sprintf("buzzword: %q", b.Matched))
	}

	return Dimension{Name: "description_quality", Score: clamp(score), Weight: descriptionWeight, Notes: notes}
}

// salaryDimension starts at 60. A concrete range earns the bulk of the
// points; vague or commission-only language deducts.
func salaryDimension(description, salaryRange string) Dimension {
	score := 60.0
	var notes []string

	text := description
	if salaryRange != "" {
		text = salaryRange + "\n" + description
	}

	if m := salaryRangeRe.FindStringSubmatch(text); m != nil {
		score += 30
		lo := parseAmount(m[1])
		hi := parseAmount(m[2])
		if lo > 0 && hi > lo && float64(hi-lo)/float64(lo) <= 0.5 {
			score += 10
		} else {
			notes = append(notes, "posted salary range is wide")
		}
	} else {
		score -= 10
		notes = append(notes, "no salary range disclosed")
		if vagueSalaryRe.MatchString(text) {
			score -= 10
			notes = append(notes, "vague salary language instead of numbers")
		}
	}

	if commissionOnlyRe.MatchString(text) {
		score -= 25
		notes = append(notes, "commission-only compensation")
	}

	return Dimension{Name: "salary_alignment", Score: clamp(score), Weight: salaryWeight, Notes: notes}
}

// requirementsDimension starts at 80 and deducts 5 points per severity unit
// of each unreasonable requirement.
func requirementsDimension(buffer string) Dimension {
	score := 80.0
	var notes []string

	for _, ind := range patterns.Scan(buffer, requirementRules) {
		score -= float64(ind.Severity) * 5
		notes = append(notes, ind.Explanation)
	}
	if niceToHaveRe.MatchString(buffer) {
		score += 5
	}

	return Dimension{Name: "requirements_reasonableness", Score: clamp(score), Weight: requirementsWeight, Notes: notes}
}

// companyDimension starts at 50 and rewards an identified, described company.
func companyDimension(company, description string) Dimension {
	score := 50.0
	var notes []string

	if company != "" {
		score += 25
	} else {
		notes = append(notes, "no company name given")
		if confidentialRe.MatchString(description) {
			score -= 20
			notes = append(notes, "anonymous 'confidential' employer")
		}
	}
	if aboutSectionRe.MatchString(description) {
		score += 15
	}
	if urlRe.MatchString(description) {
		score += 10
	}

	return Dimension{Name: "company_info", Score: clamp(score), Weight: companyWeight, Notes: notes}
}

func jobRecommendations(dims []Dimension, redFlags []patterns.Indicator) []string {
	var recs []string
	for _, rf := range redFlags {
		if rf.Severity >= suspiciousSeverity {
			recs = append(recs, "Treat this posting as suspicious: "+rf.Explanation)
		}
	}
	for _, dim := range dims {
		if dim.Score < 50 && len(dim.Notes) > 0 {
			recs = append(recs, fmt.Sprintf("Weak %s: %s", dim.Name, dim.Notes[0]))
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "Posting quality looks solid; no action needed.")
	}
	return recs
}

func weakestDimension(dims []Dimension) string {
	weakest := dims[0]
	for _, dim := range dims[1:] {
		if dim.Score < weakest.Score {
			weakest = dim
		}
	}
	return weakest.Name
}

var (
	sectionHeaderRe = regexp.MustCompile(`(?im)^\s*(?:responsibilities|requirements|qualifications|benefits|what you(?:'|’)ll do|about the role)\b`)
	niceToHaveRe    = regexp.MustCompile(`(?i)\b(?:nice to have|preferred|bonus points?)\b`)
	aboutSectionRe  = regexp.MustCompile(`(?i)\b(?:about (?:us|the company)|our mission|founded in \d{4})\b`)
	confidentialRe  = regexp.MustCompile(`(?i)\bconfidential\b`)
	urlRe           = regexp.MustCompile(`https?://\S+`)
)

func countBulletLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "•") {
			count++
		}
	}
	return count
}

func capsRatio(text string) float64 {
	letters, upper := 0, 0
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			letters++
		} else if r >= 'A' && r <= 'Z' {
			letters++
			upper++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

func parseAmount(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
