package scoring

import (
	"context"

	"github.com/jonathan/jobscout/internal/llm"
	"github.com/jonathan/jobscout/internal/types"
)

// HybridScorer blends the deterministic rule score with an optional LLM fit
// rating. The LLM path is best-effort: any failure degrades to rules-only.
type HybridScorer struct {
	rules  *RuleScorer
	client llm.Client
}

// NewHybridScorer wraps rules with an optional LLM client. A nil client
// always scores rules-only.
func NewHybridScorer(rules *RuleScorer, client llm.Client) *HybridScorer {
	return &HybridScorer{rules: rules, client: client}
}

// ScoreJob blends `(1-w)*rules + w*llm` where w is the preference's LLM
// weight. Metadata reports which path actually ran.
func (s *HybridScorer) ScoreJob(ctx context.Context, job *types.Job, prefs *types.Preferences) (float64, []string, map[string]any) {
	rulesScore, reasons, metadata := s.rules.ScoreJob(job, prefs)

	weight := prefs.LLMWeight
	if s.client == nil || weight <= 0 {
		return rulesScore, reasons, metadata
	}

	rating, err := s.client.RateFit(ctx, job, prefs)
	if err != nil {
		reasons = append(reasons, "LLM rating unavailable, using rules only")
		return rulesScore, reasons, metadata
	}

	llmScore := clamp01(rating.Score / 10)
	blended := round3((1-weight)*rulesScore + weight*llmScore)

	metadata["llm_used"] = true
	metadata["scoring_method"] = MethodHybrid
	metadata["llm_score"] = round3(llmScore)
	if rating.Reason != "" {
		reasons = append(reasons, "LLM: "+rating.Reason)
	}
	return blended, reasons, metadata
}
