package scam

import (
	"strings"
	"testing"

	"github.com/jonathan/jobscout/internal/patterns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legitimatePosting = `We are hiring a backend engineer. Salary range $140,000-$160,000.
Benefits include health insurance, dental coverage, 401(k) with employer match and paid time off.
Our interview process has three rounds. We are an equal opportunity employer.`

func TestDetectScam_ObviousScam(t *testing.T) {
	d := NewDetector()

	result, err := d.DetectScam("Easy Money",
		"Work from home guaranteed! Make $5000 per week, no experience required!", "", "")

	require.NoError(t, err)
	assert.True(t, result.IsScam)
	assert.GreaterOrEqual(t, result.Probability, 0.8)
	assert.Equal(t, ConfidenceVeryHigh, result.Confidence)
	assert.NotEqual(t, TypeLegitimate, result.ScamType)
}

func TestDetectScam_LegitimatePosting(t *testing.T) {
	d := NewDetector()

	result, err := d.DetectScam("Backend Engineer", legitimatePosting, "Acme", "acme.com")

	require.NoError(t, err)
	assert.False(t, result.IsScam)
	assert.Equal(t, TypeLegitimate, result.ScamType)
	assert.GreaterOrEqual(t, len(result.LegitimateSignals), 5)
	assert.False(t, result.Votes["legitimate_signals"])
}

func TestDetectScam_SeverityFloorCritical(t *testing.T) {
	d := NewDetector()

	// A single severity-10 phishing indicator must floor probability at 0.9.
	result, err := d.DetectScam("Data Entry",
		"To begin, verify your identity with us by replying to this posting.", "", "")

	require.NoError(t, err)
	require.NotEmpty(t, result.Indicators)
	assert.GreaterOrEqual(t, result.Probability, 0.9)
	assert.True(t, result.IsScam)
}

func TestDetectScam_SeverityFloorHigh(t *testing.T) {
	d := NewDetector()

	// Severity-8 indicator, nothing >= 9: floor is 0.8.
	result, err := d.DetectScam("Assistant",
		"You will be hired immediately, salary paid in bitcoin.", "", "")

	require.NoError(t, err)
	maxSev := patterns.Severity(0)
	for _, ind := range result.Indicators {
		if ind.Severity > maxSev {
			maxSev = ind.Severity
		}
	}
	require.Equal(t, patterns.Severity(8), maxSev)
	assert.GreaterOrEqual(t, result.Probability, 0.8)
}

func TestDetectScam_LegitimateSignalsDampen(t *testing.T) {
	d := NewDetector()

	suspicious := "Be your own boss with unlimited earning potential."
	withBenefits := suspicious + "\n" + legitimatePosting

	bare, err := d.DetectScam("Consultant", suspicious, "", "")
	require.NoError(t, err)
	damped, err := d.DetectScam("Consultant", withBenefits, "", "")
	require.NoError(t, err)

	assert.Less(t, damped.Probability, bare.Probability)
}

func TestDetectScam_FreeMailDomainAddsPhishingIndicator(t *testing.T) {
	d := NewDetector()

	result, err := d.DetectScam("Backend Engineer", legitimatePosting, "Acme", "gmail.com")

	require.NoError(t, err)
	found := false
	for _, ind := range result.Indicators {
		if ind.RuleName == "free-mail-recruiting" {
			found = true
			assert.Equal(t, TypePhishing, ind.Type)
		}
	}
	assert.True(t, found)
	assert.True(t, result.Votes["phishing"])
}

func TestDetectScam_ScamTypeIsMode(t *testing.T) {
	d := NewDetector()

	// Two MLM indicators vs one pressure indicator: MLM wins.
	result, err := d.DetectScam("Sales Partner",
		"Join our downline today! Recruit your friends and act now.", "", "")

	require.NoError(t, err)
	assert.Equal(t, TypeMLM, result.ScamType)
}

func TestDetectScam_NoIndicatorsUsesVoteProbabilityOnly(t *testing.T) {
	d := NewDetector()

	// No scam patterns, no legitimacy signals: only the legitimate-signals
	// classifier votes scam, 1/5 = 0.2.
	result, err := d.DetectScam("Gardener", "Tend the rose garden daily.", "", "")

	require.NoError(t, err)
	assert.Empty(t, result.Indicators)
	assert.Equal(t, 0.2, result.Probability)
	assert.False(t, result.IsScam)
	assert.Equal(t, ConfidenceLow, result.Confidence)
}

func TestDetectScam_InputValidation(t *testing.T) {
	d := NewDetector()

	_, err := d.DetectScam("", "description", "", "")
	assert.Error(t, err)

	_, err = d.DetectScam("Title", "", "", "")
	assert.Error(t, err)

	_, err = d.DetectScam("Title", strings.Repeat("x", patterns.MaxTextLength+1), "", "")
	assert.Error(t, err)
}

func TestDetectScam_Deterministic(t *testing.T) {
	d := NewDetector()

	first, err := d.DetectScam("Easy Money", "Make $900 per day, no experience needed! Act now.", "", "")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := d.DetectScam("Easy Money", "Make $900 per day, no experience needed! Act now.", "", "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDetectScam_ProbabilityBounds(t *testing.T) {
	d := NewDetector()

	inputs := []struct{ title, desc string }{
		{"A", "b"},
		{"Engineer", legitimatePosting},
		{"Easy Money", "Wire money for us! Cash our check, pay a registration fee, verify your ssn now!"},
	}
	for _, in := range inputs {
		result, err := d.DetectScam(in.title, in.desc, "", "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Probability, 0.0)
		assert.LessOrEqual(t, result.Probability, 1.0)
	}
}

func TestDominantType_TieBrokenByFirstOccurrence(t *testing.T) {
	indicators := []patterns.Indicator{
		{Type: TypePressure},
		{Type: TypeMLM},
	}

	assert.Equal(t, TypePressure, dominantType(indicators))
}

func TestConfidenceLevel_Bands(t *testing.T) {
	assert.Equal(t, ConfidenceVeryHigh, confidenceLevel(0.95, 4))
	assert.Equal(t, ConfidenceHigh, confidenceLevel(0.95, 2)) // not enough indicators for very_high
	assert.Equal(t, ConfidenceHigh, confidenceLevel(0.8, 2))
	assert.Equal(t, ConfidenceMedium, confidenceLevel(0.8, 1))
	assert.Equal(t, ConfidenceMedium, confidenceLevel(0.55, 0))
	assert.Equal(t, ConfidenceLow, confidenceLevel(0.4, 10))
}
