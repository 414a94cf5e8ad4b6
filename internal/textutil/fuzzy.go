package textutil

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// Similarity returns an edit-distance similarity between a and b on a 0-100
// scale: 100 is an exact match, 0 shares nothing.
func Similarity(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	dist := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}

	ratio := 1.0 - float64(dist)/float64(longest)
	if ratio < 0 {
		ratio = 0
	}
	return int(math.Round(ratio * 100))
}
