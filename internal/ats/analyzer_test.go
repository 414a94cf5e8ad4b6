package ats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobscout/internal/taxonomy"
)

const sampleResume = `John Smith
john.smith@example.com | 555-123-4567

Summary
Backend engineer with six years building cloud services.

Experience
- Built a Go payment gateway processing 2M transactions per day (2024)
- Reduced p99 latency by 40% in 2023
- Led a migration to Kubernetes in 2022

Education
BS Computer Science, 2018

Skills
Go, Kubernetes, Docker, PostgreSQL, Terraform

Projects
- Launched an open source metrics exporter

Certifications
AWS Solutions Architect
`

func newTestAnalyzer(opts ...Option) *Analyzer {
	return NewAnalyzer(append([]Option{WithRegistry(NewRegistry())}, opts...)...)
}

func TestAnalyze_EmptyResumeNoJobDescription(t *testing.T) {
	a := newTestAnalyzer()

	result, err := a.Analyze(Request{ResumeText: ""})

	require.NoError(t, err)
	assert.Equal(t, 75.0, result.ComponentScores[DimKeywords])
	for name, score := range result.ComponentScores {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 100.0, name)
	}
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
}

func TestAnalyze_RejectsBothTextAndPath(t *testing.T) {
	a := newTestAnalyzer()

	_, err := a.Analyze(Request{ResumeText: "text", ResumePath: "/tmp/resume.txt"})

	assert.Error(t, err)
}

func TestAnalyze_LoadsResumeFromPath(t *testing.T) {
	a := newTestAnalyzer(WithResumeLoader(func(path string) (string, error) {
		assert.Equal(t, "resume.txt", path)
		return sampleResume, nil
	}))

	result, err := a.Analyze(Request{ResumePath: "resume.txt"})

	require.NoError(t, err)
	assert.Equal(t, 100.0, result.ComponentScores[DimSections])
}

func TestAnalyze_ResumeLoadFailure(t *testing.T) {
	a := newTestAnalyzer(WithResumeLoader(func(string) (string, error) {
		return "", errors.New("no such file")
	}))

	_, err := a.Analyze(Request{ResumePath: "missing.txt"})

	assert.Error(t, err)
}

func TestAnalyze_WeightRenormalizationIdempotence(t *testing.T) {
	a := newTestAnalyzer()
	req := Request{ResumeText: sampleResume, JobDescription: "Go developer with Kubernetes and Docker"}

	base, err := a.Analyze(req)
	require.NoError(t, err)

	req.Weights = map[string]float64{}
	for name, w := range defaultWeights {
		req.Weights[name] = w * 4
	}
	scaled, err := a.Analyze(req)
	require.NoError(t, err)

	assert.InDelta(t, base.OverallScore, scaled.OverallScore, 1e-9)
}

func TestAnalyze_ZeroWeightDropsDimension(t *testing.T) {
	a := newTestAnalyzer()

	result, err := a.Analyze(Request{
		ResumeText: sampleResume,
		Weights:    map[string]float64{DimKeywords: 0},
	})

	require.NoError(t, err)
	assert.NotContains(t, result.Weights, DimKeywords)
	sum := 0.0
	for _, w := range result.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestAnalyze_NegativeWeightOverrideIgnored(t *testing.T) {
	a := newTestAnalyzer()

	result, err := a.Analyze(Request{
		ResumeText: sampleResume,
		Weights:    map[string]float64{DimKeywords: -5},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.30, result.Weights[DimKeywords], 1e-9)
}

func TestAnalyze_PluginScoresAndFailureIsolation(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("p1", 0.2, func(string, PluginContext) (float64, []Issue, map[string]any, error) {
		return 80, nil, map[string]any{"checked": true}, nil
	}))
	require.NoError(t, registry.Register("p2", 0.2, func(string, PluginContext) (float64, []Issue, map[string]any, error) {
		return 0, nil, nil, errors.New("backend unavailable")
	}))
	a := NewAnalyzer(WithRegistry(registry))

	result, err := a.Analyze(Request{ResumeText: sampleResume})

	require.NoError(t, err)
	assert.Equal(t, 80.0, result.ComponentScores["p1"])
	assert.Equal(t, 0.0, result.ComponentScores["p2"])
	assert.Equal(t, "backend unavailable", result.PluginMetadata["p2"]["error"])

	foundWarning := false
	for _, issue := range result.Issues {
		if issue.Category == "p2" {
			foundWarning = true
			assert.Equal(t, SeverityWarning, issue.Severity)
			assert.Contains(t, issue.Message, "Plugin error")
		}
	}
	assert.True(t, foundWarning)
}

func TestAnalyze_PanickingPluginDoesNotAffectBuiltins(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("explosive", 0.5, func(string, PluginContext) (float64, []Issue, map[string]any, error) {
		panic("boom")
	}))
	withPlugin := NewAnalyzer(WithRegistry(registry))
	plain := newTestAnalyzer()

	req := Request{ResumeText: sampleResume, JobDescription: "Go developer"}
	for i := 0; i < 3; i++ {
		got, err := withPlugin.Analyze(req)
		require.NoError(t, err)
		want, err := plain.Analyze(req)
		require.NoError(t, err)

		assert.Equal(t, 0.0, got.ComponentScores["explosive"])
		assert.Contains(t, got.PluginMetadata["explosive"]["error"], "boom")
		for name := range builtinDimensions {
			assert.Equal(t, want.ComponentScores[name], got.ComponentScores[name], name)
		}
	}
}

func TestAnalyze_PluginScoreClamped(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("overeager", 0.1, func(string, PluginContext) (float64, []Issue, map[string]any, error) {
		return 250, nil, nil, nil
	}))
	a := NewAnalyzer(WithRegistry(registry))

	result, err := a.Analyze(Request{ResumeText: sampleResume})

	require.NoError(t, err)
	assert.Equal(t, 100.0, result.ComponentScores["overeager"])
}

func TestRegister_Validation(t *testing.T) {
	r := NewRegistry()
	ok := func(string, PluginContext) (float64, []Issue, map[string]any, error) { return 50, nil, nil, nil }

	assert.Error(t, r.Register("keywords", 0.1, ok))
	assert.Error(t, r.Register("custom", -0.1, ok))
	assert.Error(t, r.Register("", 0.1, ok))
	assert.Error(t, r.Register("custom", 0.1, nil))

	require.NoError(t, r.Register("custom", 0.1, ok))
	assert.Error(t, r.Register("custom", 0.2, ok))
}

func TestRegisterAnalyzerPlugin_DefaultRegistry(t *testing.T) {
	require.NoError(t, RegisterAnalyzerPlugin("default-registry-check", 0.05, func(string, PluginContext) (float64, []Issue, map[string]any, error) {
		return 42, nil, nil, nil
	}))

	result, err := NewAnalyzer().Analyze(Request{ResumeText: sampleResume})

	require.NoError(t, err)
	assert.Equal(t, 42.0, result.ComponentScores["default-registry-check"])
}

func TestAnalyze_DeterministicOverall(t *testing.T) {
	a := newTestAnalyzer()
	req := Request{ResumeText: sampleResume, JobDescription: "Go Kubernetes Docker PostgreSQL Terraform"}

	first, err := a.Analyze(req)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := a.Analyze(req)
		require.NoError(t, err)
		assert.Equal(t, first.OverallScore, again.OverallScore)
		assert.Equal(t, first.ComponentScores, again.ComponentScores)
	}
}

func TestAnalyze_IndustryTaxonomyCoverage(t *testing.T) {
	tax, err := taxonomy.Parse("test.json", []byte(`{
		"backend": ["go", "postgresql"],
		"frontend": ["react", "angular"],
		"infra": ["kubernetes", "terraform"],
		"mobile": ["swift", "kotlin"]
	}`))
	require.NoError(t, err)
	a := newTestAnalyzer(WithTaxonomy(tax))

	result, err := a.Analyze(Request{ResumeText: sampleResume})

	require.NoError(t, err)
	// backend, infra covered; frontend, mobile not.
	assert.Equal(t, 50.0, result.ComponentScores[DimIndustry])
}

func TestAnalyze_IndustryNeutralWithoutTaxonomy(t *testing.T) {
	a := newTestAnalyzer()

	result, err := a.Analyze(Request{ResumeText: sampleResume})

	require.NoError(t, err)
	assert.Equal(t, 65.0, result.ComponentScores[DimIndustry])
}
