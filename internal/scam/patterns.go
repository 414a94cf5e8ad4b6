package scam

import "github.com/jonathan/jobscout/internal/patterns"

// Classifier pattern sets. Severities here are raw 1-10 integers; the source
// label records which public fraud catalogue the pattern derives from.

const (
	sourceFBI      = "FBI IC3 employment scam alerts"
	sourceFTC      = "FTC job scam consumer advice"
	sourceMLM      = "MLM recruitment phrasebook"
	sourcePhishing = "phishing heuristics"
)

// Pattern type tags carried on indicators; the most frequent tag becomes the
// reported scam type.
const (
	TypeAdvanceFee = "advance_fee"
	TypeMoneyMule  = "money_mule"
	TypeTooGoodPay = "unrealistic_pay"
	TypePressure   = "pressure_tactics"
	TypeMLM        = "mlm_recruitment"
	TypePhishing   = "phishing"
	TypeLegitimate = "legitimate"
)

var fbiRules = []patterns.Rule{
	patterns.MustRule(
		"upfront-fee", TypeAdvanceFee,
		`\b(?:pay|send|submit)\s+(?:an?\s+)?(?:upfront|registration|training|processing|application)\s+fee\b`,
		9, 0.9,
		"Legitimate employers never charge candidates a fee",
		"Do not pay; report the posting",
		sourceFBI,
	),
	patterns.MustRule(
		"money-transfer", TypeMoneyMule,
		`\b(?:wire|western\s+union|moneygram)\s+(?:money|funds|payment)\b`,
		10, 0.95,
		"Money transfer requests indicate a money mule scheme",
		"Do not move money on anyone's behalf",
		sourceFBI,
	),
	patterns.MustRule(
		"check-cashing", TypeMoneyMule,
		`\b(?:cash|deposit)\s+(?:a|the|our)\s+check\b`,
		9, 0.9,
		"Check-cashing requests are a classic fake-check scam",
		"Do not deposit checks from an employer you have not met",
		sourceFBI,
	),
	patterns.MustRule(
		"crypto-payment", TypeMoneyMule,
		`\b(?:paid|payment|salary)\s+in\s+(?:crypto(?:currency)?|bitcoin|btc|usdt)\b`,
		8, 0.8,
		"Crypto-only payment is a common scam marker",
		"Treat crypto-only compensation as a red flag",
		sourceFBI,
	),
	patterns.MustRule(
		"unrealistic-income", TypeTooGoodPay,
		`\b(?:make|earn)\s+\$\s*\d[\d,]*\s*(?:\+\s*)?(?:per|a|\/)\s*(?:week|day|hour)\b`,
		9, 0.85,
		"Specific outsized income promises are a scam staple",
		"Compare against realistic market pay for the role",
		sourceFBI,
	),
}

var ftcRules = []patterns.Rule{
	patterns.MustRule(
		"no-experience-needed", TypeTooGoodPay,
		`\bno\s+experience\s+(?:required|necessary|needed)\b`,
		6, 0.6,
		"High pay with no experience required rarely exists",
		"Verify the employer independently",
		sourceFTC,
	),
	patterns.MustRule(
		"guaranteed-income", TypeTooGoodPay,
		`\bguaranteed\s*(?:!|\b)`,
		7, 0.7,
		"Guaranteed income claims are an FTC-flagged scam marker",
		"No legitimate job guarantees income",
		sourceFTC,
	),
	patterns.MustRule(
		"quick-money", TypeTooGoodPay,
		`\b(?:quick|fast|easy)\s+(?:money|cash|income)\b`,
		7, 0.7,
		"Quick-money framing targets people in urgent need",
		"Verify the employer independently",
		sourceFTC,
	),
	patterns.MustRule(
		"urgency-pressure", TypePressure,
		`\b(?:act\s+now|limited\s+(?:spots|positions|openings)|(?:apply|start)\s+today\s*!)`,
		5, 0.55,
		"Artificial urgency pressures candidates into skipping diligence",
		"Take the time to research the company",
		sourceFTC,
	),
	patterns.MustRule(
		"no-interview", TypePressure,
		`\b(?:no\s+interview|hired?\s+(?:immediately|on\s+the\s+spot|without\s+an?\s+interview))\b`,
		8, 0.8,
		"Hiring without any interview is not how real employers work",
		"Expect at least one real conversation before an offer",
		sourceFTC,
	),
}

var mlmRules = []patterns.Rule{
	patterns.MustRule(
		"unlimited-earning", TypeMLM,
		`\bunlimited\s+(?:income|earnings?|earning\s+potential)\b`,
		7, 0.7,
		"Unlimited-earning language is typical of MLM recruitment",
		"Ask for the average participant's actual earnings",
		sourceMLM,
	),
	patterns.MustRule(
		"own-boss", TypeMLM,
		`\bbe\s+your\s+own\s+boss\b`,
		6, 0.6,
		"'Be your own boss' is standard MLM recruitment phrasing",
		"Check whether income depends on recruiting others",
		sourceMLM,
	),
	patterns.MustRule(
		"recruit-others", TypeMLM,
		`\brecruit\s+(?:your\s+)?(?:friends|family|others|new\s+members)\b`,
		8, 0.85,
		"Income from recruiting others defines a pyramid structure",
		"Avoid schemes compensated by recruitment",
		sourceMLM,
	),
	patterns.MustRule(
		"downline", TypeMLM,
		`\b(?:downline|upline)\b`,
		8, 0.9,
		"Downline/upline vocabulary is MLM-specific",
		"Avoid schemes compensated by recruitment",
		sourceMLM,
	),
	patterns.MustRule(
		"starter-kit", TypeMLM,
		`\b(?:buy|purchase)\s+(?:our|a|the)\s+(?:starter\s+kit|product\s+pack|inventory)\b`,
		8, 0.85,
		"Required inventory purchases shift all risk to the recruit",
		"Never buy inventory to get a job",
		sourceMLM,
	),
}

var phishingRules = []patterns.Rule{
	patterns.MustRule(
		"identity-verification", TypePhishing,
		`\b(?:verify|confirm)\s+your\s+(?:identity|ssn|social\s+security|bank\s+(?:account|details))\b`,
		10, 0.95,
		"Identity verification requests before hire are phishing",
		"Never share SSN or bank details before a verified offer",
		sourcePhishing,
	),
	patterns.MustRule(
		"sensitive-data-request", TypePhishing,
		`\b(?:send|provide|share)\s+(?:your\s+)?(?:ssn|social\s+security\s+number|bank\s+(?:account|details)|driver'?s\s+licen[cs]e)\b`,
		10, 0.95,
		"Requests for sensitive identifiers in a posting are phishing",
		"Never share SSN or bank details before a verified offer",
		sourcePhishing,
	),
	patterns.MustRule(
		"chat-app-interview", TypePhishing,
		`\b(?:interview|chat)\s+(?:via|over|on)\s+(?:telegram|whatsapp|signal|google\s+hangouts)\b`,
		8, 0.8,
		"Chat-app-only interviews are a known phishing pattern",
		"Insist on a video call through the company's own domain",
		sourcePhishing,
	),
	patterns.MustRule(
		"shortened-link", TypePhishing,
		`\b(?:bit\.ly|tinyurl\.com|t\.co)\/\S+`,
		7, 0.7,
		"Shortened links hide the real application destination",
		"Apply only through the company's own careers page",
		sourcePhishing,
	),
}

// legitimateRules match positive signals of a genuine employer. They produce
// plain match strings, not indicators; absence of legitimacy is itself a
// classifier vote.
var legitimateRules = []patterns.Rule{
	patterns.MustRule("benefits-401k", TypeLegitimate, `\b401\s*\(?k\)?\b`, 1, 1.0, "", "", ""),
	patterns.MustRule("health-insurance", TypeLegitimate, `\bhealth\s+insurance\b`, 1, 1.0, "", "", ""),
	patterns.MustRule("dental-vision", TypeLegitimate, `\b(?:dental|vision)\s+(?:coverage|insurance|plan)\b`, 1, 1.0, "", "", ""),
	patterns.MustRule("paid-time-off", TypeLegitimate, `\b(?:paid\s+time\s+off|pto|paid\s+holidays?|parental\s+leave)\b`, 1, 1.0, "", "", ""),
	patterns.MustRule("eeo-statement", TypeLegitimate, `\bequal\s+opportunity\s+employer\b`, 1, 1.0, "", "", ""),
	patterns.MustRule("interview-process", TypeLegitimate, `\binterview\s+(?:process|rounds?|stages?)\b`, 1, 1.0, "", "", ""),
	patterns.MustRule("background-check", TypeLegitimate, `\bbackground\s+check\b`, 1, 1.0, "", "", ""),
	patterns.MustRule("salary-range", TypeLegitimate, `\bsalary\s+range\b`, 1, 1.0, "", "", ""),
	patterns.MustRule("company-mission", TypeLegitimate, `\b(?:our\s+mission|about\s+(?:us|the\s+company)|founded\s+in\s+\d{4})\b`, 1, 1.0, "", "", ""),
	patterns.MustRule("retirement-match", TypeLegitimate, `\b(?:employer|company)\s+match\b`, 1, 1.0, "", "", ""),
}
