// Package textutil provides shared text tokenization and fuzzy matching
// helpers for the scoring and analysis packages.
package textutil

import (
	"regexp"
	"sort"
	"strings"
)

// tokenRe matches words of length >= 3 that start with a letter. The extra
// characters keep technology tokens like "c++", "c#" and "node.js" intact.
var tokenRe = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9+#/.]{2,}\b`)

// stopWords are common English words dropped from job-description token sets
// before keyword coverage is computed.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "able": true,
	"get": true, "set": true, "such": true, "may": true, "per": true,
	"including": true, "required": true, "preferred": true, "experience": true,
	"years": true, "strong": true, "skills": true, "ability": true,
}

// ActionVerbs are strong resume action verbs credited by readability and
// quality scoring.
var ActionVerbs = map[string]bool{
	"achieved": true, "architected": true, "automated": true, "built": true,
	"created": true, "delivered": true, "designed": true, "developed": true,
	"drove": true, "engineered": true, "implemented": true, "improved": true,
	"increased": true, "launched": true, "led": true, "migrated": true,
	"optimized": true, "reduced": true, "scaled": true, "shipped": true,
	"streamlined": true, "transformed": true,
}

// Tokens returns the lowercased tokens of text in order of appearance,
// including duplicates.
func Tokens(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// TokenSet returns the set of distinct lowercased tokens in text.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokens(text) {
		set[tok] = true
	}
	return set
}

// ContentTokenSet returns the distinct tokens of text with stop words removed.
func ContentTokenSet(text string) map[string]bool {
	set := TokenSet(text)
	for w := range stopWords {
		delete(set, w)
	}
	return set
}

// IsStopWord reports whether w (already lowercased) is a stop word.
func IsStopWord(w string) bool {
	return stopWords[w]
}

// SortedKeys returns the keys of set in lexicographic order. Detector output
// must not depend on map iteration order.
func SortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
