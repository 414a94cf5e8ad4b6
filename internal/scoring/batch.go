package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobscout/internal/types"
)

// ScoredJob pairs a job with its scoring outcome.
type ScoredJob struct {
	Job      *types.Job     `json:"job"`
	Score    float64        `json:"score"`
	Reasons  []string       `json:"reasons"`
	Metadata map[string]any `json:"metadata"`
}

// defaultConcurrency bounds parallel LLM calls during batch scoring.
const defaultConcurrency = 4

// ScoreAll scores every job concurrently and returns results in input order.
func (s *HybridScorer) ScoreAll(ctx context.Context, jobs []*types.Job, prefs *types.Preferences, concurrency int) ([]ScoredJob, error) {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]ScoredJob, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score, reasons, metadata := s.ScoreJob(ctx, job, prefs)
			results[i] = ScoredJob{Job: job, Score: score, Reasons: reasons, Metadata: metadata}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
