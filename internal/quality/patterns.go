package quality

import "github.com/jonathan/jobscout/internal/patterns"

const sourceQuality = "posting quality heuristics"

// redFlagRules feed the legitimacy dimension and the suspicious override.
// Severities are raw 1-10 integers; anything >= 8 forces SUSPICIOUS.
var redFlagRules = []patterns.Rule{
	patterns.MustRule(
		"candidate-pays-fee", "red_flag",
		`\b(?:pay|send|submit)\s+(?:an?\s+)?(?:upfront|registration|training|processing)\s+fee\b`,
		9, 0.9,
		"Charging candidates a fee is a fraud marker",
		"Avoid this posting",
		sourceQuality,
	),
	patterns.MustRule(
		"money-movement", "red_flag",
		`\b(?:wire|transfer)\s+(?:money|funds)\b`,
		10, 0.95,
		"Money movement requests indicate a scam",
		"Avoid this posting",
		sourceQuality,
	),
	patterns.MustRule(
		"outsized-income-promise", "red_flag",
		`\b(?:make|earn)\s+\$\s*\d[\d,]*\s*(?:per|a|\/)\s*(?:week|day|hour)\b`,
		8, 0.8,
		"Outsized income promises do not belong in real postings",
		"Compare against market pay",
		sourceQuality,
	),
	patterns.MustRule(
		"no-experience-high-pay", "red_flag",
		`\bno\s+experience\s+(?:required|necessary|needed)\b`,
		6, 0.6,
		"No-experience postings with strong pay are usually bait",
		"Verify the employer",
		sourceQuality,
	),
	patterns.MustRule(
		"urgency", "red_flag",
		`\b(?:urgent(?:ly)?\s+hiring|immediate\s+start|start\s+today)\b`,
		5, 0.55,
		"Urgency pressure suggests churn or bait",
		"Research the company first",
		sourceQuality,
	),
}

// buzzwordRules lower the description-quality dimension.
var buzzwordRules = []patterns.Rule{
	patterns.MustRule(
		"fast-paced", "buzzword",
		`\bfast-?paced\s+environment\b`,
		2, 0.5,
		"Filler phrase that conveys no information",
		"Describe the actual pace and workload",
		sourceQuality,
	),
	patterns.MustRule(
		"many-hats", "buzzword",
		`\bwear\s+many\s+hats\b`,
		3, 0.6,
		"Usually signals undefined responsibilities",
		"List the concrete responsibilities",
		sourceQuality,
	),
	patterns.MustRule(
		"work-family", "buzzword",
		`\b(?:we(?:'|\s+a)re\s+(?:like\s+)?a\s+family|work\s+family)\b`,
		3, 0.6,
		"Family framing often masks boundary problems",
		"Describe the culture concretely",
		sourceQuality,
	),
	patterns.MustRule(
		"self-starter", "buzzword",
		`\bself-?starter\b`,
		2, 0.5,
		"Filler phrase that conveys no information",
		"Describe the autonomy the role actually has",
		sourceQuality,
	),
}

// requirementRules lower the requirements-reasonableness dimension.
var requirementRules = []patterns.Rule{
	patterns.MustRule(
		"decade-plus-experience", "unreasonable_requirement",
		`\b(?:1[0-9]|[2-9][0-9])\+?\s+years(?:'|\s+of)?\s+experience\b`,
		5, 0.6,
		"A decade-plus experience bar excludes most qualified candidates",
		"Require the outcomes, not the years",
		sourceQuality,
	),
	patterns.MustRule(
		"entry-level-experience-demand", "unreasonable_requirement",
		`\bentry[- ]level\b[\s\S]{0,80}?\b[3-9]\+?\s+years\b`,
		8, 0.85,
		"Entry-level roles demanding years of experience are contradictory",
		"Match the experience bar to the level",
		sourceQuality,
	),
	patterns.MustRule(
		"always-available", "unreasonable_requirement",
		`\b(?:24\/7|nights\s+and\s+weekends|on[- ]call\s+at\s+all\s+times|available\s+at\s+all\s+times)\b`,
		6, 0.7,
		"Unbounded availability demands are unreasonable",
		"State the real on-call rotation",
		sourceQuality,
	),
}

// salaryRangeRe extracts a posted salary range for the salary-alignment
// dimension.
var salaryRangeRe = patterns.MustRule(
	"salary-range", "salary",
	`\$\s*(\d[\d,]*)\s*(?:-|–|—|to)\s*\$?\s*(\d[\d,]*)`,
	1, 1.0, "", "", sourceQuality,
).Regex

// vagueSalaryRe matches salary language with no numbers behind it.
var vagueSalaryRe = patterns.MustRule(
	"vague-salary", "salary",
	`\b(?:competitive\s+(?:salary|pay|compensation)|salary\s+(?:doe|negotiable|commensurate))\b`,
	1, 1.0, "", "", sourceQuality,
).Regex

// commissionOnlyRe matches commission-only compensation.
var commissionOnlyRe = patterns.MustRule(
	"commission-only", "salary",
	`\bcommission[- ]only\b`,
	1, 1.0, "", "", sourceQuality,
).Regex
