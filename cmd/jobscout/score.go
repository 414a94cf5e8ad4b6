package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobscout/internal/llm"
	"github.com/jonathan/jobscout/internal/scoring"
	"github.com/jonathan/jobscout/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score jobs against the configured preferences",
	Long:  "Score one or more jobs (a JSON array of job records) against the preferences from the config file, optionally blending in a Gemini fit rating.",
	RunE:  runScore,
}

var scoreJobsFile string

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobsFile, "jobs", "j", "", "Path to JSON file with an array of jobs")
	_ = scoreCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(scoreJobsFile)
	if err != nil {
		return fmt.Errorf("failed to read jobs file: %w", err)
	}
	var jobs []*types.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs JSON: %w", err)
	}

	ctx := cmd.Context()

	var client llm.Client
	if cfg.APIKey != "" && cfg.Preferences.LLMWeight > 0 {
		client, err = llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
	} else if verbose {
		fmt.Fprintln(os.Stderr, "No API key or zero llm_weight; scoring rules-only")
	}

	scorer := scoring.NewHybridScorer(scoring.NewRuleScorer(), client)
	results, err := scorer.ScoreAll(ctx, jobs, &cfg.Preferences, cfg.Concurrency)
	if err != nil {
		return err
	}
	return printJSON(results)
}
