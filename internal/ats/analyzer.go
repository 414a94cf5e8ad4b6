// Package ats estimates how well a resume will survive automated applicant
// screening. It combines seven built-in dimensions with optional registered
// plugin dimensions through a re-normalized weight map.
package ats

import (
	"fmt"
	"math"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/jonathan/jobscout/internal/patterns"
	"github.com/jonathan/jobscout/internal/taxonomy"
)

// Issue severity levels.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Issue is one finding attached to a dimension.
type Issue struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Built-in dimension names and their default weights. The defaults sum to 1.0
// before plugins or caller overrides are merged in.
const (
	DimKeywords    = "keywords"
	DimIndustry    = "industry"
	DimSections    = "sections"
	DimFormatting  = "formatting"
	DimReadability = "readability"
	DimExperience  = "experience"
	DimRecency     = "recency"
)

var builtinDimensions = map[string]bool{
	DimKeywords:    true,
	DimIndustry:    true,
	DimSections:    true,
	DimFormatting:  true,
	DimReadability: true,
	DimExperience:  true,
	DimRecency:     true,
}

var defaultWeights = map[string]float64{
	DimKeywords:    0.30,
	DimIndustry:    0.15,
	DimSections:    0.15,
	DimFormatting:  0.10,
	DimReadability: 0.10,
	DimExperience:  0.10,
	DimRecency:     0.10,
}

// Request holds the inputs of one analysis. Supply the resume as either
// inline text or a file path, never both. Everything else is optional.
type Request struct {
	ResumeText     string
	ResumePath     string
	JobDescription string
	Industry       string

	// ExtractedYears is the candidate's total years of experience when the
	// caller already extracted it; nil means unknown.
	ExtractedYears *float64

	// Weights overrides dimension weights by name. Negative entries are
	// ignored; zero entries remove the dimension from the overall score.
	Weights map[string]float64
}

// Result is the outcome of one ATS analysis.
type Result struct {
	OverallScore    float64                   `json:"overall_score"`
	ComponentScores map[string]float64        `json:"component_scores"`
	Weights         map[string]float64        `json:"weights"`
	Issues          []Issue                   `json:"issues"`
	Recommendations []string                  `json:"recommendations"`
	PluginMetadata  map[string]map[string]any `json:"plugin_metadata,omitempty"`
}

// Analyzer scores resumes for ATS compatibility. Build it once and reuse it;
// analysis calls are read-only and safe for concurrent use.
type Analyzer struct {
	registry   *Registry
	taxonomy   taxonomy.Taxonomy
	fuzzy      bool
	loadResume func(path string) (string, error)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRegistry uses a plugin registry other than DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(a *Analyzer) { a.registry = r }
}

// WithTaxonomy supplies the skills taxonomy backing the industry dimension.
func WithTaxonomy(t taxonomy.Taxonomy) Option {
	return func(a *Analyzer) { a.taxonomy = t }
}

// WithFuzzyMatching toggles fuzzy keyword credit. Enabled by default.
func WithFuzzyMatching(enabled bool) Option {
	return func(a *Analyzer) { a.fuzzy = enabled }
}

// WithResumeLoader replaces the file loader used for Request.ResumePath.
func WithResumeLoader(load func(path string) (string, error)) Option {
	return func(a *Analyzer) { a.loadResume = load }
}

// NewAnalyzer returns an analyzer backed by DefaultRegistry with fuzzy
// keyword matching enabled.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		registry: DefaultRegistry,
		fuzzy:    true,
		loadResume: func(path string) (string, error) {
			data, err := os.ReadFile(path)
			return string(data), err
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores the requested resume across the built-in dimensions and all
// registered plugins. A plugin failure never aborts the analysis.
func (a *Analyzer) Analyze(req Request) (*Result, error) {
	if req.ResumeText != "" && req.ResumePath != "" {
		return nil, &patterns.InputError{Field: "resume_text", Message: "supply resume text or a resume path, not both"}
	}
	text := req.ResumeText
	if req.ResumePath != "" {
		loaded, err := a.loadResume(req.ResumePath)
		if err != nil {
			return nil, &patterns.InputError{Field: "resume_path", Message: fmt.Sprintf("failed to load resume: %v", err)}
		}
		text = loaded
	}
	if utf8.RuneCountInString(text) > patterns.MaxTextLength {
		return nil, &patterns.InputError{Field: "resume_text", Message: fmt.Sprintf("exceeds maximum length of %d characters", patterns.MaxTextLength)}
	}

	result := &Result{
		ComponentScores: make(map[string]float64),
		PluginMetadata:  make(map[string]map[string]any),
	}

	components := []struct {
		name string
		fn   func() component
	}{
		{DimKeywords, func() component { return keywordComponent(text, req.JobDescription, a.fuzzy) }},
		{DimIndustry, func() component { return industryComponent(text, req.Industry, a.taxonomy) }},
		{DimSections, func() component { return sectionsComponent(text) }},
		{DimFormatting, func() component { return formattingComponent(text) }},
		{DimReadability, func() component { return readabilityComponent(text) }},
		{DimExperience, func() component { return experienceComponent(req.JobDescription, req.ExtractedYears) }},
		{DimRecency, func() component { return recencyComponent(text) }},
	}
	for _, c := range components {
		comp := c.fn()
		result.ComponentScores[c.name] = comp.score
		result.Issues = append(result.Issues, comp.issues...)
		result.Recommendations = append(result.Recommendations, comp.recommendations...)
	}

	pluginCtx := PluginContext{JobDescription: req.JobDescription, Industry: req.Industry}
	weights := make(map[string]float64, len(defaultWeights))
	for name, w := range defaultWeights {
		weights[name] = w
	}
	for _, p := range a.registry.snapshot() {
		score, issues, meta := runPlugin(p, text, pluginCtx)
		result.ComponentScores[p.name] = score
		result.Issues = append(result.Issues, issues...)
		if meta != nil {
			result.PluginMetadata[p.name] = meta
		}
		weights[p.name] = p.weight
	}
	for name, w := range req.Weights {
		if w >= 0 {
			weights[name] = w
		}
	}

	result.Weights = normalizeWeights(weights, result.ComponentScores)
	overall := 0.0
	for _, name := range sortedNames(result.Weights) {
		overall += result.ComponentScores[name] * result.Weights[name]
	}
	result.OverallScore = round2(overall)

	if len(result.Recommendations) == 0 {
		result.Recommendations = []string{"Resume looks ATS-friendly."}
	}
	return result, nil
}

// runPlugin executes one plugin with panic and error isolation. Failures map
// to a zero score, a warning issue, and error metadata.
func runPlugin(p plugin, text string, ctx PluginContext) (score float64, issues []Issue, meta map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			score = 0.0
			issues = []Issue{{Category: p.name, Severity: SeverityWarning, Message: fmt.Sprintf("Plugin error: %v", r)}}
			meta = map[string]any{"error": fmt.Sprint(r)}
		}
	}()

	s, iss, m, err := p.fn(text, ctx)
	if err != nil {
		return 0.0,
			[]Issue{{Category: p.name, Severity: SeverityWarning, Message: "Plugin error: " + err.Error()}},
			map[string]any{"error": err.Error()}
	}
	return clamp(s), iss, m
}

// normalizeWeights drops entries that are non-positive or have no computed
// score, then scales the rest to sum to 1.0.
func normalizeWeights(weights, scores map[string]float64) map[string]float64 {
	sum := 0.0
	for name, w := range weights {
		if w <= 0 {
			continue
		}
		if _, ok := scores[name]; !ok {
			continue
		}
		sum += w
	}
	normalized := make(map[string]float64)
	if sum == 0 {
		return normalized
	}
	for name, w := range weights {
		if w <= 0 {
			continue
		}
		if _, ok := scores[name]; !ok {
			continue
		}
		normalized[name] = w / sum
	}
	return normalized
}

func sortedNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
