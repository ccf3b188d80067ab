package poker

import "sort"

// Compare orders two results, strongest first
// A negative number means a ranks ahead of b, a positive number means b ranks
// ahead of a, and zero is a tie.
func Compare(a, b PlayerResult) int {
	if a.HandRank != b.HandRank {
		return b.HandRank - a.HandRank
	}

	if a.TieBreakerCardRank != b.TieBreakerCardRank {
		return b.TieBreakerCardRank - a.TieBreakerCardRank
	}

	// only high card hands look past the first tie breaker
	if a.HandRank == HighCard.Rank() {
		return b.TieBreakerTotalRank - a.TieBreakerTotalRank
	}

	return 0
}

// sortResults sorts in place, strongest first. Ties keep their order.
func sortResults(results []PlayerResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return Compare(results[i], results[j]) < 0
	})
}

// Winners returns the leading results that tie with the first result
// The results must already be sorted.
func Winners(results []PlayerResult) []PlayerResult {
	if len(results) == 0 {
		return nil
	}

	n := 1
	for n < len(results) && Compare(results[0], results[n]) == 0 {
		n++
	}

	return results[:n]
}
