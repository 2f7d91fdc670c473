package diagnostic

import (
	"slices"
	"strings"
)

// Suggest returns the candidates within maxDistance edits of input, closest
// first. Comparison is case-insensitive.
func Suggest(input string, candidates []string, maxDistance int) []string {
	type scored struct {
		name string
		dist int
	}

	in := strings.ToLower(input)

	var hits []scored

	for _, c := range candidates {
		if d := editDistance(in, strings.ToLower(c)); d <= maxDistance {
			hits = append(hits, scored{name: c, dist: d})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return a.dist - b.dist
	})

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}

	return out
}

// editDistance is the Levenshtein distance between a and b, computed over
// bytes with two rolling rows.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if a == "" {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
