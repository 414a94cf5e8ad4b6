package bias

import (
	"strconv"
	"strings"

	"github.com/jonathan/jobscout/internal/patterns"
)

// Bias pattern groups. Each group is scanned independently; a job posting can
// carry several bias types at once.

const sourceEEOC = "EEOC guidance"
const sourceStyle = "inclusive language style guide"

var genderRules = []patterns.Rule{
	patterns.MustRule(
		"gendered-job-title", string(GenderBias),
		`\b(salesman|saleswoman|chairman|chairwoman|foreman|forewoman|handyman|repairman|waitress|stewardess|policeman|fireman|mailman|manpower)\b`,
		patterns.SeverityCritical, 0.95,
		"Gendered job title excludes candidates of other genders",
		"Use a neutral title such as salesperson, chairperson, or technician",
		sourceEEOC,
	),
	patterns.MustRule(
		"male-pronoun", string(GenderBias),
		`\b(he|him|his|himself)\b`,
		patterns.SeverityHigh, 0.8,
		"Male pronoun assumes the candidate's gender",
		"Rewrite with they/them or the role name",
		sourceStyle,
	),
	patterns.MustRule(
		"female-pronoun", string(GenderBias),
		`\b(she|her|hers|herself)\b`,
		patterns.SeverityHigh, 0.8,
		"Female pronoun assumes the candidate's gender",
		"Rewrite with they/them or the role name",
		sourceStyle,
	),
	patterns.MustRule(
		"bro-culture-language", string(GenderBias),
		`\b(rockstar|ninja|guru|dominate|crush it|work hard,? play hard)\b`,
		patterns.SeverityMedium, 0.6,
		"Aggressive or bro-culture language correlates with gender-skewed applicant pools",
		"Describe the concrete skills instead",
		sourceStyle,
	),
	patterns.MustRule(
		"guys-address", string(GenderBias),
		`\b(the guys|our guys|you guys)\b`,
		patterns.SeverityMedium, 0.6,
		"Addressing the team as 'guys' reads as male-by-default",
		"Use 'the team' or 'everyone'",
		sourceStyle,
	),
}

var ageRules = []patterns.Rule{
	patterns.MustRule(
		"direct-age-limit", string(AgeBias),
		`\b(?:under|below|over)\s+(?:the\s+age\s+of\s+)?\d{2}\b`,
		patterns.SeverityCritical, 0.9,
		"Direct age requirement is discriminatory",
		"Remove the age requirement entirely",
		sourceEEOC,
	),
	patterns.MustRule(
		"age-range-requirement", string(AgeBias),
		`\bage[sd]?\s+\d{2}\s*(?:-|to)\s*\d{2}\b`,
		patterns.SeverityCritical, 0.9,
		"Explicit age range requirement is discriminatory",
		"Remove the age range",
		sourceEEOC,
	),
	patterns.MustRule(
		"recent-graduate", string(AgeBias),
		`\brecent\s+(?:college\s+)?grad(?:uate)?s?\b`,
		patterns.SeverityMedium, 0.65,
		"'Recent graduate' is coded language for younger candidates",
		"State the actual experience level required",
		sourceEEOC,
	),
	patterns.MustRule(
		"digital-native", string(AgeBias),
		`\bdigital\s+native\b`,
		patterns.SeverityHigh, 0.85,
		"'Digital native' is coded language excluding older candidates",
		"Name the specific technology fluency you need",
		sourceEEOC,
	),
	patterns.MustRule(
		"young-energetic", string(AgeBias),
		`\byoung\s+(?:and\s+)?(?:energetic|dynamic|hungry|vibrant)\b`,
		patterns.SeverityHigh, 0.8,
		"'Young and energetic' signals a preference for younger candidates",
		"Describe the pace of the work, not an age profile",
		sourceEEOC,
	),
	patterns.MustRule(
		"max-experience-cap", string(AgeBias),
		`\b(?:no|not)\s+more\s+than\s+\d+\s+years?\s+(?:of\s+)?experience\b`,
		patterns.SeverityHigh, 0.7,
		"Capping maximum experience filters out older candidates",
		"Drop the upper bound on experience",
		sourceEEOC,
	),
}

var salaryRules = []patterns.Rule{
	patterns.MustRule(
		"salary-hidden", string(SalaryBias),
		`\b(?:salary|compensation|pay)\s+(?:is\s+)?(?:hidden|confidential|undisclosed|not\s+disclosed)\b`,
		patterns.SeverityHigh, 0.8,
		"Hidden salary disadvantages candidates with less negotiating leverage",
		"Publish the salary range",
		sourceStyle,
	),
	patterns.MustRule(
		"salary-vague", string(SalaryBias),
		`\b(?:competitive\s+(?:salary|pay|compensation)|salary\s+(?:doe|negotiable|commensurate))\b`,
		patterns.SeverityLow, 0.5,
		"Vague salary language hides the real range",
		"Publish the salary range",
		sourceStyle,
	),
	wideSalaryRangeRule(),
}

var locationRules = []patterns.Rule{
	patterns.MustRule(
		"no-remote", string(LocationBias),
		`\b(?:no\s+remote|remote\s+(?:is\s+)?not\s+(?:an\s+option|available|possible))\b`,
		patterns.SeverityHigh, 0.85,
		"Blanket no-remote policy excludes candidates outside commuting range",
		"Offer a remote or hybrid option where the work allows it",
		sourceStyle,
	),
	patterns.MustRule(
		"onsite-only", string(LocationBias),
		`\bon-?site\s+only\b`,
		patterns.SeverityHigh, 0.8,
		"On-site-only phrasing excludes remote candidates",
		"Offer a remote or hybrid option where the work allows it",
		sourceStyle,
	),
	patterns.MustRule(
		"mandatory-location", string(LocationBias),
		`\bmust\s+(?:be\s+)?(?:located|reside|live|be\s+based)\s+in\b`,
		patterns.SeverityMedium, 0.7,
		"Mandatory-location phrasing narrows the candidate pool",
		"State a time-zone or legal-entity constraint instead if one exists",
		sourceStyle,
	),
	patterns.MustRule(
		"local-candidates-only", string(LocationBias),
		`\blocal\s+candidates?\s+only\b`,
		patterns.SeverityHigh, 0.8,
		"'Local candidates only' excludes relocating and remote applicants",
		"Explain the actual on-site requirement",
		sourceStyle,
	),
	patterns.MustRule(
		"relocation-required", string(LocationBias),
		`\brelocation\s+(?:is\s+)?required\b`,
		patterns.SeverityMedium, 0.6,
		"Mandatory relocation narrows the candidate pool",
		"Consider remote work or relocation assistance",
		sourceStyle,
	),
}

// wideRangeThreshold is the relative spread above which a posted salary range
// is considered too wide to be informative: (max-min)/min > 0.30.
const wideRangeThreshold = 0.30

// wideSalaryRangeRule flags salary ranges whose spread exceeds
// wideRangeThreshold. The numeric check runs as the rule's post-match
// validator over the captured group values.
func wideSalaryRangeRule() patterns.Rule {
	return patterns.MustRule(
		"salary-range-too-wide", string(SalaryBias),
		`\$\s*(\d[\d,]*)\s*(?:k\b)?\s*(?:-|–|—|to)\s*\$?\s*(\d[\d,]*)\s*(?:k\b)?`,
		patterns.SeverityMedium, 0.7,
		"Salary range is too wide to be meaningful",
		"Narrow the range to the band actually budgeted for the role",
		sourceStyle,
	).WithValidator(func(match []string) bool {
		lo := parseAmount(match[1])
		hi := parseAmount(match[2])
		if lo <= 0 || hi <= lo {
			return false
		}
		return float64(hi-lo)/float64(lo) > wideRangeThreshold
	})
}

func parseAmount(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}
