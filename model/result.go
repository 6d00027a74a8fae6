package model

import "sort"

// Result is a single entry of a ranked result list.
type Result struct {
	// ID is the caller-assigned document identifier.
	ID uint32
	// Score is the strategy-dependent relevance score (higher is better).
	Score float32
}

// Less reports whether r ranks strictly before other.
// Ordering is by descending score; equal scores break ties by ascending ID
// so that result lists are deterministic regardless of scoring order.
func (r Result) Less(other Result) bool {
	if r.Score != other.Score {
		return r.Score > other.Score
	}
	return r.ID < other.ID
}

// SortResults sorts results in place into ranked order: descending score,
// ties by ascending ID.
func SortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Less(results[j])
	})
}
