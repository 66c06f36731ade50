// Package similarity provides string edit distance and near-duplicate
// detection for product descriptions.
package similarity

import "unicode"

// Levenshtein returns the classic unit-cost edit distance between a and b:
// the minimum number of single-rune insertions, deletions and substitutions
// needed to transform a into b. Runes are compared case-insensitively, so
// "Pere" and "pere" are zero apart.
func Levenshtein(a, b string) int {
	ra := fold(a)
	rb := fold(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two-row dynamic programming, O(len(a)*len(b)) time, O(len(b)) space.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func fold(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}
