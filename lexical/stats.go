package lexical

// Stats is a point-in-time snapshot of index statistics.
type Stats struct {
	// DocCount is the number of indexed documents.
	DocCount int
	// TermCount is the number of distinct terms in the postings.
	TermCount int
	// AvgDocLength is the average document length in terms.
	AvgDocLength float64
}

// Stats returns a snapshot of the index statistics.
func (idx *Index) Stats() Stats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return Stats{
		DocCount:     len(idx.docLengths),
		TermCount:    len(idx.postings),
		AvgDocLength: idx.avgDocLengthLocked(),
	}
}
