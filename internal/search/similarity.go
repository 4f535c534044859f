package search

import (
	"regexp"
	"strings"
)

var similaritySpaceRegex = regexp.MustCompile(`\s+`)

// Similarity returns a normalized edit-distance ratio in [0, 1] between two
// subtitle texts, computed case-insensitively over whitespace-collapsed
// text. Identical texts score 1.0 and the function is symmetric.
func Similarity(a, b string) float64 {
	a = normalizeForSimilarity(a)
	b = normalizeForSimilarity(b)

	if a == b {
		return 1.0
	}

	ra := []rune(a)
	rb := []rune(b)

	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1.0
	}

	distance := levenshteinDistance(ra, rb)

	return 1.0 - float64(distance)/float64(longest)
}

func normalizeForSimilarity(s string) string {
	s = strings.ToLower(s)
	s = similaritySpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// classic two-row dynamic programming edit distance
func levenshteinDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1] + cost

			min := deletion
			if insertion < min {
				min = insertion
			}
			if substitution < min {
				min = substitution
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
