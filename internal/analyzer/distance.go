package analyzer

// Levenshtein computes the edit distance between two element sequences with
// unit costs for insertion, deletion, and substitution. Only two rows of the
// distance matrix are kept, sized by the shorter sequence.
func Levenshtein(a, b []string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	if m == 0 {
		return n
	}

	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		cur[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

// Similarity converts an edit distance into a score in [0, 1] by normalizing
// against the longer of the two sequence lengths. Two empty sequences are
// identical by definition.
func Similarity(distance, lenA, lenB int) float64 {
	longest := max(lenA, lenB)
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(longest)
}
