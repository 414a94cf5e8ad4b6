package patterns

import "unicode/utf8"

// ContextRadius is the number of characters captured on each side of a match
// for the indicator's context window.
const ContextRadius = 30

// Indicator is one concrete rule match in analyzed text. It copies the rule's
// severity/confidence/explanation so results stay self-contained after the
// rule catalogue changes.
type Indicator struct {
	RuleName    string   `json:"rule"`
	Type        string   `json:"type"`
	Matched     string   `json:"matched"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Context     string   `json:"context"`
	Severity    Severity `json:"severity"`
	Confidence  float64  `json:"confidence"`
	Explanation string   `json:"explanation"`
	Alternative string   `json:"alternative,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// Scan runs every rule over text and returns one Indicator per match.
// Matching is independent across rules: a single character range may satisfy
// several rules and each contributes its own indicators. Overlapping hits are
// deliberately not deduplicated so every violation stays visible for
// remediation. Empty text yields an empty list, never an error.
func Scan(text string, rules []Rule) []Indicator {
	if text == "" {
		return nil
	}

	var indicators []Indicator
	for i := range rules {
		rule := &rules[i]
		matches := rule.Regex.FindAllStringSubmatchIndex(text, -1)
		for _, m := range matches {
			if rule.Validate != nil && !rule.Validate(submatches(text, m)) {
				continue
			}
			start, end := m[0], m[1]
			indicators = append(indicators, Indicator{
				RuleName:    rule.Name,
				Type:        rule.Type,
				Matched:     text[start:end],
				Start:       start,
				End:         end,
				Context:     contextWindow(text, start, end),
				Severity:    rule.Severity,
				Confidence:  rule.Confidence,
				Explanation: rule.Explanation,
				Alternative: rule.Alternative,
				Source:      rule.Source,
			})
		}
	}
	return indicators
}

// submatches extracts submatch strings from a FindAllStringSubmatchIndex entry.
func submatches(text string, m []int) []string {
	groups := make([]string, 0, len(m)/2)
	for i := 0; i < len(m); i += 2 {
		if m[i] < 0 || m[i+1] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, text[m[i]:m[i+1]])
	}
	return groups
}

// contextWindow returns the matched text plus up to ContextRadius characters
// on each side, clamped to the text bounds. The window is counted in runes so
// multibyte text never gets sliced mid-character.
func contextWindow(text string, start, end int) string {
	lo := start
	for i := 0; i < ContextRadius && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < ContextRadius && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return text[lo:hi]
}

// CountBySeverityBand returns indicator counts keyed by severity band name.
func CountBySeverityBand(indicators []Indicator) map[string]int {
	counts := make(map[string]int)
	for _, ind := range indicators {
		counts[ind.Severity.Band()]++
	}
	return counts
}
