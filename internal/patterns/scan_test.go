package patterns

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_EmptyText(t *testing.T) {
	rules := []Rule{MustRule("any", "test", `\bword\b`, SeverityLow, 0.5, "", "", "")}

	indicators := Scan("", rules)

	assert.Empty(t, indicators)
}

func TestScan_CaseInsensitive(t *testing.T) {
	rules := []Rule{MustRule("greeting", "test", `\bhello\b`, SeverityMedium, 0.7, "greeting found", "", "")}

	indicators := Scan("HELLO world, hello again", rules)

	require.Len(t, indicators, 2)
	assert.Equal(t, "HELLO", indicators[0].Matched)
	assert.Equal(t, "hello", indicators[1].Matched)
	assert.Equal(t, "greeting found", indicators[0].Explanation)
}

func TestScan_OverlappingRulesNotDeduplicated(t *testing.T) {
	rules := []Rule{
		MustRule("a", "test", `\bsalesman\b`, SeverityCritical, 0.9, "", "", ""),
		MustRule("b", "test", `\bsales\w+\b`, SeverityLow, 0.5, "", "", ""),
	}

	indicators := Scan("we need a salesman", rules)

	// Both rules hit the same range; both indicators must survive.
	require.Len(t, indicators, 2)
	assert.Equal(t, indicators[0].Start, indicators[1].Start)
}

func TestScan_ContextWindow(t *testing.T) {
	text := strings.Repeat("x", 100) + " target " + strings.Repeat("y", 100)
	rules := []Rule{MustRule("t", "test", `\btarget\b`, SeverityLow, 0.5, "", "", "")}

	indicators := Scan(text, rules)

	require.Len(t, indicators, 1)
	ind := indicators[0]
	assert.Contains(t, ind.Context, "target")
	assert.Equal(t, ind.End-ind.Start+2*ContextRadius, len(ind.Context))
}

func TestScan_ContextWindowClampedAtBounds(t *testing.T) {
	rules := []Rule{MustRule("t", "test", `\bhi\b`, SeverityLow, 0.5, "", "", "")}

	indicators := Scan("hi", rules)

	require.Len(t, indicators, 1)
	assert.Equal(t, "hi", indicators[0].Context)
	assert.Equal(t, 0, indicators[0].Start)
	assert.Equal(t, 2, indicators[0].End)
}

func TestScan_ContextWindowMultibyte(t *testing.T) {
	text := strings.Repeat("é", 50) + " target " + strings.Repeat("ü", 50)
	rules := []Rule{MustRule("t", "test", `\btarget\b`, SeverityLow, 0.5, "", "", "")}

	indicators := Scan(text, rules)

	require.Len(t, indicators, 1)
	ctx := indicators[0].Context
	assert.True(t, utf8.ValidString(ctx))
	assert.Contains(t, ctx, "target")
	// The window is counted in characters, not bytes.
	assert.Equal(t, 2*ContextRadius+len("target"), utf8.RuneCountInString(ctx))
}

func TestScan_ValidatorSuppressesMatch(t *testing.T) {
	// Only flag salary ranges wider than 30% of the minimum.
	rule := MustRule("wide-range", "salary", `\$(\d[\d,]*)\s*-\s*\$(\d[\d,]*)`, SeverityMedium, 0.7, "", "", "").
		WithValidator(func(match []string) bool {
			lo, _ := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
			hi, _ := strconv.Atoi(strings.ReplaceAll(match[2], ",", ""))
			return lo > 0 && float64(hi-lo)/float64(lo) > 0.30
		})

	narrow := Scan("pay is $100,000 - $110,000", []Rule{rule})
	wide := Scan("pay is $50,000 - $150,000", []Rule{rule})

	assert.Empty(t, narrow)
	require.Len(t, wide, 1)
	assert.Equal(t, "wide-range", wide[0].RuleName)
}

func TestScan_Deterministic(t *testing.T) {
	rules := []Rule{
		MustRule("a", "t1", `\bfoo\b`, SeverityHigh, 0.8, "", "", ""),
		MustRule("b", "t2", `\bbar\b`, SeverityLow, 0.4, "", "", ""),
	}
	text := "foo bar foo bar foo"

	first := Scan(text, rules)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Scan(text, rules))
	}
}

func TestSeverity_Bands(t *testing.T) {
	assert.Equal(t, "critical", Severity(10).Band())
	assert.Equal(t, "critical", SeverityCritical.Band())
	assert.Equal(t, "high", Severity(8).Band())
	assert.Equal(t, "high", SeverityHigh.Band())
	assert.Equal(t, "medium", Severity(6).Band())
	assert.Equal(t, "medium", Severity(4).Band())
	assert.Equal(t, "low", Severity(3).Band())
	assert.Equal(t, "low", Severity(1).Band())
}

func TestSeverity_Weights(t *testing.T) {
	assert.Equal(t, 1.0, SeverityCritical.Weight())
	assert.Equal(t, 0.6, SeverityHigh.Weight())
	assert.Equal(t, 0.3, SeverityMedium.Weight())
	assert.Equal(t, 0.15, SeverityLow.Weight())
}

func TestValidateJobInput(t *testing.T) {
	assert.NoError(t, ValidateJobInput("Engineer", "a"))

	err := ValidateJobInput("", "description")
	require.Error(t, err)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)

	assert.Error(t, ValidateJobInput("Engineer", ""))

	oversized := strings.Repeat("a", MaxTextLength+1)
	assert.Error(t, ValidateJobInput("Engineer", oversized))

	// Exactly at the limit is still valid.
	assert.NoError(t, ValidateJobInput("Engineer", strings.Repeat("a", MaxTextLength)))
}

func TestValidateText_MultibyteCountedInCharacters(t *testing.T) {
	atLimit := strings.Repeat("é", MaxTextLength)

	assert.NoError(t, ValidateText("job_description", atLimit))
	assert.Error(t, ValidateText("job_description", atLimit+"é"))
}

func TestCountBySeverityBand(t *testing.T) {
	indicators := []Indicator{
		{Severity: SeverityCritical},
		{Severity: SeverityCritical},
		{Severity: SeverityLow},
	}

	counts := CountBySeverityBand(indicators)

	assert.Equal(t, 2, counts["critical"])
	assert.Equal(t, 1, counts["low"])
	assert.Equal(t, 0, counts["high"])
}
