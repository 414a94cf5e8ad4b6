package types

import "strings"

// Preferences drives rule-based job scoring. Loaded from configuration and
// read-only during a scoring pass.
type Preferences struct {
	TitleAllowlist []string `json:"title_allowlist,omitempty"`
	TitleBlocklist []string `json:"title_blocklist,omitempty"`

	Remote    bool     `json:"remote"`
	Cities    []string `json:"cities,omitempty"`
	States    []string `json:"states,omitempty"`
	Countries []string `json:"countries,omitempty"`

	// SalaryFloor is the minimum acceptable salary in whole currency units.
	SalaryFloor int `json:"salary_floor,omitempty" validate:"gte=0"`

	KeywordBoosts []string `json:"keyword_boosts,omitempty"`

	// LLMWeight blends the optional LLM fit rating into the rule score;
	// 0 disables the LLM path entirely.
	LLMWeight float64 `json:"llm_weight" validate:"gte=0,lte=1"`
}

// TitleBlocked reports whether any blocklist term occurs in title,
// case-insensitive.
func (p *Preferences) TitleBlocked(title string) (string, bool) {
	return matchTerm(title, p.TitleBlocklist)
}

// TitleAllowed reports whether title passes the allowlist. An empty
// allowlist accepts everything.
func (p *Preferences) TitleAllowed(title string) (string, bool) {
	if len(p.TitleAllowlist) == 0 {
		return "", true
	}
	return matchTerm(title, p.TitleAllowlist)
}

// LocationTerms returns the configured city/state/country terms in order.
func (p *Preferences) LocationTerms() []string {
	terms := make([]string, 0, len(p.Cities)+len(p.States)+len(p.Countries))
	terms = append(terms, p.Cities...)
	terms = append(terms, p.States...)
	terms = append(terms, p.Countries...)
	return terms
}

func matchTerm(text string, terms []string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(term)) {
			return term, true
		}
	}
	return "", false
}
