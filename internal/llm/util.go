// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a potential language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// ParseFitRating parses a model response into a FitRating, tolerating
// markdown wrappers. Scores outside 0-10 are rejected.
func ParseFitRating(text string) (*FitRating, error) {
	var rating FitRating
	if err := json.Unmarshal([]byte(CleanJSONBlock(text)), &rating); err != nil {
		return nil, fmt.Errorf("failed to parse fit rating JSON: %w", err)
	}
	if rating.Score < 0 || rating.Score > 10 {
		return nil, fmt.Errorf("fit rating score %.2f out of range 0-10", rating.Score)
	}
	return &rating, nil
}
