package ats

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/jobscout/internal/taxonomy"
	"github.com/jonathan/jobscout/internal/textutil"
)

// component is the outcome of one built-in dimension.
type component struct {
	score           float64
	issues          []Issue
	recommendations []string
}

const (
	// noJobDescriptionScore is the fixed keyword score when no job
	// description is supplied.
	noJobDescriptionScore = 75.0

	// fuzzyThreshold is the minimum 0-100 similarity for partial keyword
	// credit; fuzzyTokenLimit caps how many resume tokens each missing
	// keyword is compared against.
	fuzzyThreshold  = 85
	fuzzyTokenLimit = 500
)

// keywordComponent measures coverage of job-description keywords. Exact
// matches drive the score; fuzzy near-misses earn a small boost.
func keywordComponent(resumeText, jobDescription string, fuzzy bool) component {
	if strings.TrimSpace(jobDescription) == "" {
		return component{
			score: noJobDescriptionScore,
			issues: []Issue{{
				Category: DimKeywords,
				Severity: SeverityInfo,
				Message:  "no job description supplied; keyword coverage not computed",
			}},
		}
	}

	jdTokens := textutil.ContentTokenSet(jobDescription)
	if len(jdTokens) == 0 {
		return component{score: noJobDescriptionScore}
	}
	resumeTokens := textutil.TokenSet(resumeText)

	found := 0
	var missing []string
	for _, tok := range textutil.SortedKeys(jdTokens) {
		if resumeTokens[tok] {
			found++
		} else {
			missing = append(missing, tok)
		}
	}

	partial := 0
	if fuzzy && len(missing) > 0 {
		candidates := textutil.SortedKeys(resumeTokens)
		if len(candidates) > fuzzyTokenLimit {
			candidates = candidates[:fuzzyTokenLimit]
		}
		remaining := missing[:0]
		for _, tok := range missing {
			matched := false
			for _, candidate := range candidates {
				if textutil.Similarity(tok, candidate) >= fuzzyThreshold {
					matched = true
					break
				}
			}
			if matched {
				partial++
			} else {
				remaining = append(remaining, tok)
			}
		}
		missing = remaining
	}

	coverage := float64(found) / float64(len(jdTokens))
	score := 100 * coverage
	if coverage < 0.5 {
		score *= 0.85
	}
	score += math.Min(10, float64(partial)*1.5)

	c := component{score: clamp(score)}
	if coverage < 0.5 {
		c.issues = append(c.issues, Issue{
			Category: DimKeywords,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("resume covers only %.0f%% of job-description keywords", coverage*100),
		})
	}
	if len(missing) > 0 {
		sample := missing
		if len(sample) > 8 {
			sample = sample[:8]
		}
		c.recommendations = append(c.recommendations,
			"Add missing keywords where truthful: "+strings.Join(sample, ", "))
	}
	return c
}

// industryComponent measures how many taxonomy categories for the target
// industry the resume touches.
func industryComponent(resumeText, industry string, tax taxonomy.Taxonomy) component {
	neutral := component{score: 65.0}
	if len(tax) == 0 {
		neutral.issues = append(neutral.issues, Issue{
			Category: DimIndustry,
			Severity: SeverityInfo,
			Message:  "no skills taxonomy loaded; industry coverage not computed",
		})
		return neutral
	}
	categories := tax.CategoriesFor(industry)
	if len(categories) == 0 {
		return neutral
	}

	lowered := strings.ToLower(resumeText)
	covered := 0
	var uncovered []string
	for _, category := range categories {
		hit := false
		for _, term := range tax[category] {
			if term != "" && strings.Contains(lowered, term) {
				hit = true
				break
			}
		}
		if hit {
			covered++
		} else {
			uncovered = append(uncovered, category)
		}
	}

	ratio := float64(covered) / float64(len(categories))
	c := component{score: clamp(100 * ratio)}
	if ratio < 0.5 && len(uncovered) > 0 {
		sample := uncovered
		if len(sample) > 5 {
			sample = sample[:5]
		}
		c.recommendations = append(c.recommendations,
			"Cover more of the target industry's skill areas: "+strings.Join(sample, ", "))
	}
	return c
}

var sectionDetectors = []struct {
	name string
	re   *regexp.Regexp
}{
	{"contact", regexp.MustCompile(`(?i)[\w.+-]+@[\w-]+\.[a-z]{2,}|\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}`)},
	{"summary", regexp.MustCompile(`(?im)^\s*(?:summary|objective|profile)\b`)},
	{"experience", regexp.MustCompile(`(?im)^\s*(?:experience|work history|employment)\b`)},
	{"education", regexp.MustCompile(`(?im)^\s*education\b`)},
	{"skills", regexp.MustCompile(`(?im)^\s*(?:skills|technical skills|technologies)\b`)},
	{"projects", regexp.MustCompile(`(?im)^\s*projects?\b`)},
	{"certifications", regexp.MustCompile(`(?im)^\s*(?:certifications?|licenses?)\b`)},
}

// sectionsComponent scores the fraction of standard resume sections present.
func sectionsComponent(text string) component {
	found := 0
	var missing []string
	for _, s := range sectionDetectors {
		if s.re.MatchString(text) {
			found++
		} else {
			missing = append(missing, s.name)
		}
	}

	c := component{score: clamp(100 * float64(found) / float64(len(sectionDetectors)))}
	if len(missing) > 0 {
		c.issues = append(c.issues, Issue{
			Category: DimSections,
			Severity: SeverityInfo,
			Message:  "sections not detected: " + strings.Join(missing, ", "),
		})
	}
	if found < 4 {
		c.recommendations = append(c.recommendations,
			"Add standard section headings so parsers can segment the resume.")
	}
	return c
}

var symbolRe = regexp.MustCompile(`[^\w\s.,;:()\-/+#&%$'"@]`)

// formattingComponent deducts from 100 for layouts that confuse parsers:
// heavy symbols, non-ASCII text, tabs, and wildly uneven line lengths.
func formattingComponent(text string) component {
	score := 100.0
	var issues []Issue

	runes := []rune(text)
	if len(runes) > 0 {
		nonASCII := 0
		for _, r := range runes {
			if r > 127 {
				nonASCII++
			}
		}
		ratio := float64(nonASCII) / float64(len(runes))
		switch {
		case ratio > 0.05:
			score -= 25
			issues = append(issues, Issue{Category: DimFormatting, Severity: SeverityWarning,
				Message: "heavy non-ASCII character use breaks many parsers"})
		case ratio > 0.02:
			score -= 10
			issues = append(issues, Issue{Category: DimFormatting, Severity: SeverityInfo,
				Message: "non-ASCII characters may be mangled by parsers"})
		}

		symbols := len(symbolRe.FindAllString(text, -1))
		if float64(symbols)/float64(len(runes)) > 0.03 {
			score -= 15
			issues = append(issues, Issue{Category: DimFormatting, Severity: SeverityWarning,
				Message: "decorative symbols are likely to be misread"})
		}
	}

	var lengths []float64
	longLine := false
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lengths = append(lengths, float64(len(line)))
		if len(line) > 250 {
			longLine = true
		}
	}
	if stddev(lengths) > 60 {
		score -= 10
		issues = append(issues, Issue{Category: DimFormatting, Severity: SeverityInfo,
			Message: "very uneven line lengths suggest a multi-column layout"})
	}
	if longLine {
		score -= 10
		issues = append(issues, Issue{Category: DimFormatting, Severity: SeverityWarning,
			Message: "lines over 250 characters usually come from tables"})
	}
	if strings.ContainsRune(text, '\t') {
		score -= 5
		issues = append(issues, Issue{Category: DimFormatting, Severity: SeverityInfo,
			Message: "tab characters often break column alignment in parsers"})
	}

	return component{score: clamp(score), issues: issues}
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// readabilityComponent starts at 50 and rewards bullet density, short
// sentences, and strong action verbs.
func readabilityComponent(text string) component {
	score := 50.0
	var issues []Issue
	var recs []string

	nonEmpty := 0
	bullets := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "•") {
			bullets++
		}
	}
	if nonEmpty > 0 {
		ratio := float64(bullets) / float64(nonEmpty)
		switch {
		case ratio >= 0.3:
			score += 20
		case ratio >= 0.15:
			score += 10
		case bullets == 0:
			score -= 10
			recs = append(recs, "Use bullet points for accomplishments; dense paragraphs scan poorly.")
		}
	}

	words := strings.Fields(text)
	if len(words) > 0 {
		sentences := 0
		for _, s := range sentenceSplitRe.Split(text, -1) {
			if strings.TrimSpace(s) != "" {
				sentences++
			}
		}
		if sentences == 0 {
			sentences = 1
		}
		avg := float64(len(words)) / float64(sentences)
		switch {
		case avg <= 20:
			score += 15
		case avg > 30:
			score -= 10
			issues = append(issues, Issue{Category: DimReadability, Severity: SeverityInfo,
				Message: "sentences are very long on average"})
		}
	}

	verbs := make(map[string]bool)
	for _, tok := range textutil.Tokens(text) {
		if textutil.ActionVerbs[tok] {
			verbs[tok] = true
		}
	}
	score += math.Min(15, float64(len(verbs))*3)

	return component{score: clamp(score), issues: issues, recommendations: recs}
}

var yearsRequiredRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*years?\b`)

// experienceComponent penalizes the gap between years required by the job
// description and years the candidate has.
func experienceComponent(jobDescription string, extractedYears *float64) component {
	if strings.TrimSpace(jobDescription) == "" {
		return component{score: 70.0}
	}

	required := 0.0
	for _, m := range yearsRequiredRe.FindAllStringSubmatch(jobDescription, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && float64(n) > required {
			required = float64(n)
		}
	}
	if required == 0 {
		return component{score: 85.0}
	}
	if extractedYears == nil {
		return component{
			score: 60.0,
			issues: []Issue{{
				Category: DimExperience,
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("job asks for %.0f years but the resume's experience could not be determined", required),
			}},
		}
	}

	gap := required - *extractedYears
	if gap <= 0 {
		return component{score: 100.0}
	}
	return component{
		score: clamp(100 - 20*gap),
		issues: []Issue{{
			Category: DimExperience,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("resume shows %.1f fewer years than the job requires", gap),
		}},
	}
}

var yearMentionRe = regexp.MustCompile(`\b(?:19[89]\d|20[0-4]\d)\b`)

// Recency bonus thresholds.
const (
	currentYearFloor = 2024
	recentYearFloor  = 2022
	manyYearsCount   = 5
)

// recencyComponent rewards resumes that mention recent and plentiful dates.
func recencyComponent(text string) component {
	score := 50.0
	var issues []Issue

	years := make(map[int]bool)
	maxYear := 0
	for _, m := range yearMentionRe.FindAllString(text, -1) {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		years[year] = true
		if year > maxYear {
			maxYear = year
		}
	}

	switch {
	case maxYear >= currentYearFloor:
		score += 30
	case maxYear >= recentYearFloor:
		score += 15
	case maxYear == 0:
		issues = append(issues, Issue{Category: DimRecency, Severity: SeverityInfo,
			Message: "no dates found; parsers cannot judge how current the experience is"})
	}
	if len(years) >= manyYearsCount {
		score += 20
	}

	return component{score: clamp(score), issues: issues}
}

func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}
