// Package suggest finds the closest known name for a mistyped one.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the candidate nearest to name by edit distance, or "" when
// none is close enough to be a plausible typo. Comparison ignores case.
func Closest(name string, candidates []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	best, bestDist := "", -1
	for _, candidate := range candidates {
		d := levenshtein.ComputeDistance(name, strings.ToLower(candidate))
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist < 0 || bestDist > threshold(name) {
		return ""
	}
	return best
}

// threshold allows roughly one edit per three characters, at least two.
func threshold(name string) int {
	return max(2, len(name)/3)
}
