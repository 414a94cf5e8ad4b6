// Package llm provides the optional LLM-backed job fit rating consumed by
// the hybrid scorer. The rest of the system treats it as best-effort: any
// failure here falls back to rules-only scoring.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/jobscout/internal/types"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// FitRating is the model's judgment of how well a job matches the
// preferences. Score is on a 0-10 scale.
type FitRating struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Client is an abstraction over LLM providers.
type Client interface {
	// RateFit rates how well job matches prefs on a 0-10 scale.
	RateFit(ctx context.Context, job *types.Job, prefs *types.Preferences) (*FitRating, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed client. An empty model selects
// DefaultModel.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// RateFit asks the model for a fit rating as strict JSON.
func (c *GeminiClient) RateFit(ctx context.Context, job *types.Job, prefs *types.Preferences) (*FitRating, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent ratings
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildFitPrompt(job, prefs)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate fit rating: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}
	return ParseFitRating(text)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// maxPromptDescription caps how much posting text goes into the prompt.
const maxPromptDescription = 4000

func buildFitPrompt(job *types.Job, prefs *types.Preferences) string {
	description := job.Description
	if len(description) > maxPromptDescription {
		description = description[:maxPromptDescription]
	}

	var b strings.Builder
	b.WriteString("Rate how well this job posting matches the candidate's preferences.\n")
	b.WriteString("Respond with JSON only: {\"score\": <0-10>, \"reason\": \"<one sentence>\"}\n\n")
	fmt.Fprintf(&b, "Job title: %s\nCompany: %s\nLocation: %s\n\n%s\n\n", job.Title, job.Company, job.Location, description)
	b.WriteString("Preferences:\n")
	if len(prefs.TitleAllowlist) > 0 {
		fmt.Fprintf(&b, "- wants titles like: %s\n", strings.Join(prefs.TitleAllowlist, ", "))
	}
	if prefs.Remote {
		b.WriteString("- remote work preferred\n")
	}
	if terms := prefs.LocationTerms(); len(terms) > 0 {
		fmt.Fprintf(&b, "- acceptable locations: %s\n", strings.Join(terms, ", "))
	}
	if prefs.SalaryFloor > 0 {
		fmt.Fprintf(&b, "- minimum salary: %d\n", prefs.SalaryFloor)
	}
	if len(prefs.KeywordBoosts) > 0 {
		fmt.Fprintf(&b, "- especially interested in: %s\n", strings.Join(prefs.KeywordBoosts, ", "))
	}
	return b.String()
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
