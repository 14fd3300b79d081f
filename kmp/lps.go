package kmp

// BuildLPS computes the failure table of pattern: lps[k] is the length of the
// longest proper prefix of pattern[:k+1] that is also a suffix of it.
//
// Each fallback strictly shortens the running prefix, which grows by at most
// one per step, so the total work is O(len(pattern)). An empty pattern yields
// an empty table.
func BuildLPS[T comparable](pattern []T) []int {
	lps := make([]int, len(pattern))
	if len(pattern) == 0 {
		return lps
	}

	n := 0
	for i := 1; i < len(pattern); {
		switch {
		case pattern[i] == pattern[n]:
			n++
			lps[i] = n
			i++
		case n > 0:
			n = lps[n-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}

// validLPS reports whether lps has the shape of a table built for a pattern
// of length m. It checks bounds only, not content.
func validLPS(lps []int, m int) bool {
	if len(lps) != m {
		return false
	}
	for k, v := range lps {
		if v < 0 || v > k {
			return false
		}
	}
	return true
}
