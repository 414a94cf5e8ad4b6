package quality

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/jobscout/internal/patterns"
	"github.com/jonathan/jobscout/internal/textutil"
)

// Resume quality dimension weights. They sum to 1.0.
const (
	contentWeight        = 0.25
	quantificationWeight = 0.20
	actionVerbWeight     = 0.20
	keywordWeight        = 0.15
	resumeFormatWeight   = 0.10
	lengthWeight         = 0.10
)

// ResumeScore is the outcome of one resume quality analysis.
type ResumeScore struct {
	Overall         float64     `json:"overall_score"`
	Level           Level       `json:"quality_level"`
	Dimensions      []Dimension `json:"dimensions"`
	Issues          []string    `json:"issues"`
	Recommendations []string    `json:"recommendations"`
}

// ResumeDetector scores resume text. Stateless and safe for concurrent use.
type ResumeDetector struct{}

// NewResumeDetector returns a resume quality detector.
func NewResumeDetector() *ResumeDetector {
	return &ResumeDetector{}
}

// Analyze scores resume text across the six quality dimensions.
// targetIndustry and targetRole are optional; when given they drive the
// keyword-density dimension.
func (d *ResumeDetector) Analyze(resumeText, targetIndustry, targetRole string) (*ResumeScore, error) {
	if err := patterns.ValidateText("resume_text", resumeText); err != nil {
		return nil, err
	}

	dims := []Dimension{
		contentDepthDimension(resumeText),
		quantificationDimension(resumeText),
		actionVerbDimension(resumeText),
		keywordDensityDimension(resumeText, targetIndustry, targetRole),
		resumeFormattingDimension(resumeText),
		lengthDimension(resumeText),
	}

	overall := 0.0
	for _, dim := range dims {
		overall += dim.Score * dim.Weight
	}
	overall = round1(overall)

	score := &ResumeScore{
		Overall:    overall,
		Level:      resumeLevel(overall),
		Dimensions: dims,
	}
	for _, dim := range dims {
		score.Issues = append(score.Issues, dim.Notes...)
		if dim.Score < 50 {
			score.Recommendations = append(score.Recommendations,
				fmt.Sprintf("Improve %s (currently %.0f/100).", dim.Name, dim.Score))
		}
	}
	if len(score.Recommendations) == 0 {
		score.Recommendations = []string{"Resume fundamentals look solid."}
	}

	return score, nil
}

// resumeLevel bands a resume score. Resumes have no red-flag override.
func resumeLevel(overall float64) Level {
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

// contentDepthDimension starts at 50 and rewards enough words and a real
// bullet structure.
func contentDepthDimension(text string) Dimension {
	score := 50.0
	var notes []string

	words := len(strings.Fields(text))
	if words >= 200 {
		score += 15
	}
	if words >= 400 {
		score += 10
	}
	if words < 100 {
		score -= 20
		notes = append(notes, "resume is very thin on content")
	}
	if countBulletLines(text) >= 5 {
		score += 15
	} else {
		notes = append(notes, "few bullet points; accomplishments are hard to scan")
	}

	return Dimension{Name: "content_depth", Score: clamp(score), Weight: contentWeight, Notes: notes}
}

// quantificationDimension starts at 50; each bullet carrying a number or
// percentage adds 10 up to +50, and a resume with bullets but none
// quantified loses 20.
func quantificationDimension(text string) Dimension {
	score := 50.0
	var notes []string

	bullets := 0
	quantified := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "*") && !strings.HasPrefix(trimmed, "•") {
			continue
		}
		bullets++
		if quantifiedRe.MatchString(trimmed) {
			quantified++
		}
	}

	bonus := float64(quantified) * 10
	if bonus > 50 {
		bonus = 50
	}
	score += bonus
	if bullets > 0 && quantified == 0 {
		score -= 20
		notes = append(notes, "no bullet quantifies its impact")
	}

	return Dimension{Name: "quantification", Score: clamp(score), Weight: quantificationWeight, Notes: notes}
}

// actionVerbDimension starts at 50; each distinct strong verb adds 8 up to
// +50, and a resume with none loses 15.
func actionVerbDimension(text string) Dimension {
	score := 50.0
	var notes []string

	found := make(map[string]bool)
	for _, tok := range textutil.Tokens(text) {
		if textutil.ActionVerbs[tok] {
			found[tok] = true
		}
	}

	bonus := float64(len(found)) * 8
	if bonus > 50 {
		bonus = 50
	}
	score += bonus
	if len(found) == 0 {
		score -= 15
		notes = append(notes, "no strong action verbs found")
	}

	return Dimension{Name: "action_verbs", Score: clamp(score), Weight: actionVerbWeight, Notes: notes}
}

// keywordDensityDimension starts at 60 and is neutral without a target; with
// a target role/industry it scales with coverage of the target's tokens.
func keywordDensityDimension(text, targetIndustry, targetRole string) Dimension {
	score := 60.0
	var notes []string

	target := strings.TrimSpace(targetRole + " " + targetIndustry)
	if target != "" {
		targetTokens := textutil.ContentTokenSet(target)
		if len(targetTokens) > 0 {
			resumeTokens := textutil.TokenSet(text)
			matched := 0
			for tok := range targetTokens {
				if resumeTokens[tok] {
					matched++
				}
			}
			coverage := float64(matched) / float64(len(targetTokens))
			score += 40 * coverage
			if matched == 0 {
				score -= 20
				notes = append(notes, fmt.Sprintf("resume never mentions the target %q", target))
			}
		}
	}

	return Dimension{Name: "keyword_density", Score: clamp(score), Weight: keywordWeight, Notes: notes}
}

// resumeFormattingDimension starts at 80 and deducts for hard-to-parse
// formatting; clear section headings earn the remainder.
func resumeFormattingDimension(text string) Dimension {
	score := 80.0
	var notes []string

	headings := len(resumeHeadingRe.FindAllString(text, -1))
	if headings >= 3 {
		score += 10
	} else if headings == 0 {
		score -= 10
		notes = append(notes, "no recognizable section headings")
	}

	for _, line := range strings.Split(text, "\n") {
		if len(line) > 200 {
			score -= 10
			notes = append(notes, "very long lines suggest table or column layout")
			break
		}
	}
	if strings.ContainsRune(text, '\t') {
		score -= 5
		notes = append(notes, "tab characters often break ATS parsing")
	}
	if nonASCIIRatio(text) > 0.02 {
		score -= 10
		notes = append(notes, "heavy non-ASCII symbol use")
	}

	return Dimension{Name: "formatting", Score: clamp(score), Weight: resumeFormatWeight, Notes: notes}
}

// lengthDimension starts at 100; 300-800 words is the sweet spot.
func lengthDimension(text string) Dimension {
	score := 100.0
	var notes []string

	words := len(strings.Fields(text))
	switch {
	case words < 150:
		score -= 60
		notes = append(notes, "resume is far too short")
	case words < 300:
		score -= 30
		notes = append(notes, "resume is on the short side")
	case words > 1200:
		score -= 40
		notes = append(notes, "resume is far too long")
	case words > 800:
		score -= 20
		notes = append(notes, "resume is on the long side")
	}

	return Dimension{Name: "length", Score: clamp(score), Weight: lengthWeight, Notes: notes}
}

var (
	quantifiedRe    = regexp.MustCompile(`[\d%]`)
	resumeHeadingRe = regexp.MustCompile(`(?im)^\s*(?:summary|objective|profile|experience|work history|education|skills|projects|certifications?)\b`)
)

func nonASCIIRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}
	nonASCII := 0
	for _, r := range text {
		if r > 127 {
			nonASCII++
		}
	}
	return float64(nonASCII) / float64(len([]rune(text)))
}
