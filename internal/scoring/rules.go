// Package scoring computes 0..1 match scores for jobs against a preference
// set, optionally blended with an LLM fit rating.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonathan/jobscout/internal/types"
)

// Rule score adjustments. Scoring starts from the base and clamps to [0,1].
const (
	baseScore            = 0.5
	allowlistBonus       = 0.2
	allowlistMissPenalty = 0.3
	remoteBonus          = 0.1
	locationBonus        = 0.1
	locationMissPenalty  = 0.2
	salaryBonus          = 0.1
	salaryFloorPenalty   = 0.2
	keywordBoost         = 0.05
	keywordBoostCap      = 0.15
)

// Ghost-job staleness thresholds: old or endlessly reposted listings are
// penalized because they rarely lead to a hire.
const (
	staleAgeDays    = 21.0
	ghostAgeDays    = 45.0
	staleAgePenalty = 0.1
	ghostAgePenalty = 0.2
	repostThreshold = 10
	repostPenalty   = 0.1
)

// Scoring method values reported in metadata.
const (
	MethodRulesOnly = "rules_only"
	MethodHybrid    = "hybrid"
)

// RuleScorer scores jobs deterministically from preferences alone. Safe for
// concurrent use.
type RuleScorer struct {
	now func() time.Time
}

// NewRuleScorer returns a scorer using the wall clock for staleness checks.
func NewRuleScorer() *RuleScorer {
	return &RuleScorer{now: time.Now}
}

// ScoreJob rates job against prefs. It returns the score, the human-readable
// reasons behind it, and a metadata map that always carries rules_score,
// llm_used, and scoring_method.
func (s *RuleScorer) ScoreJob(job *types.Job, prefs *types.Preferences) (float64, []string, map[string]any) {
	metadata := map[string]any{
		"llm_used":       false,
		"scoring_method": MethodRulesOnly,
	}

	if term, blocked := prefs.TitleBlocked(job.Title); blocked {
		metadata["rules_score"] = 0.0
		return 0.0, []string{fmt.Sprintf("title matches blocklist term %q", term)}, metadata
	}

	score := baseScore
	var reasons []string

	if term, ok := prefs.TitleAllowed(job.Title); ok {
		if term != "" {
			score += allowlistBonus
			reasons = append(reasons, fmt.Sprintf("title matches allowlist term %q", term))
		}
	} else {
		score -= allowlistMissPenalty
		reasons = append(reasons, "title matches no allowlist term")
	}

	switch {
	case job.Remote && prefs.Remote:
		score += remoteBonus
		reasons = append(reasons, "remote position matches remote preference")
	default:
		if terms := prefs.LocationTerms(); len(terms) > 0 {
			if term, ok := matchLocation(job.Location, terms); ok {
				score += locationBonus
				reasons = append(reasons, fmt.Sprintf("location matches preference %q", term))
			} else if !job.Remote {
				score -= locationMissPenalty
				reasons = append(reasons, fmt.Sprintf("location %q matches no preferred location", job.Location))
			}
		}
	}

	if prefs.SalaryFloor > 0 && job.SalaryMax > 0 {
		if job.SalaryMax < prefs.SalaryFloor {
			score -= salaryFloorPenalty
			reasons = append(reasons, fmt.Sprintf("salary tops out below the %d floor", prefs.SalaryFloor))
		} else {
			score += salaryBonus
			reasons = append(reasons, "salary meets the configured floor")
		}
	}

	if len(prefs.KeywordBoosts) > 0 {
		text := job.SearchText()
		boost := 0.0
		for _, keyword := range prefs.KeywordBoosts {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" {
				continue
			}
			if strings.Contains(text, strings.ToLower(keyword)) {
				boost += keywordBoost
				reasons = append(reasons, fmt.Sprintf("mentions boosted keyword %q", keyword))
			}
		}
		score += math.Min(boost, keywordBoostCap)
	}

	age := job.AgeDays(s.now())
	switch {
	case age > ghostAgeDays:
		score -= ghostAgePenalty
		reasons = append(reasons, fmt.Sprintf("posting is %.0f days old, likely a ghost job", age))
	case age > staleAgeDays:
		score -= staleAgePenalty
		reasons = append(reasons, fmt.Sprintf("posting is %.0f days old", age))
	}
	if job.TimesSeen >= repostThreshold {
		score -= repostPenalty
		reasons = append(reasons, fmt.Sprintf("seen %d times across scrapes, likely reposted", job.TimesSeen))
	}

	score = round3(clamp01(score))
	metadata["rules_score"] = score
	return score, reasons, metadata
}

func matchLocation(location string, terms []string) (string, bool) {
	lowered := strings.ToLower(location)
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(term)) {
			return term, true
		}
	}
	return "", false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
