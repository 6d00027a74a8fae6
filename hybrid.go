package rankgo

import (
	"fmt"

	"github.com/hupe1980/rankgo/model"
)

// HybridOptions contains configuration options for hybrid retrieval.
type HybridOptions struct {
	// RRFK is the constant k in the RRF formula: score = 1/(k + rank + 1).
	RRFK int

	// Logger configures structured logging for hybrid queries.
	Logger *Logger
}

// Hybrid fuses the result lists of several retrievers, typically one per
// strategy, into a single ranking using Reciprocal Rank Fusion.
//
// Note: the returned candidates carry RRF scores, not the strategies'
// native similarity scores.
type Hybrid struct {
	retrievers []Retriever
	opts       HybridOptions
}

// NewHybrid creates a hybrid retriever over the given strategy retrievers.
func NewHybrid(retrievers []Retriever, optFns ...func(o *HybridOptions)) *Hybrid {
	opts := HybridOptions{
		RRFK:   DefaultRRFK,
		Logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Hybrid{
		retrievers: retrievers,
		opts:       opts,
	}
}

// Retrieve runs queries[i] against the i-th retriever and fuses the ranked
// lists with RRF. It fails with ErrLengthMismatch when the number of
// queries differs from the number of retrievers and with ErrEmptyInput
// when there are none.
func (h *Hybrid) Retrieve(queries []Query, k int) ([]model.Result, error) {
	if len(h.retrievers) == 0 || len(queries) == 0 {
		return nil, fmt.Errorf("%w: no retrievers or queries", model.ErrEmptyInput)
	}
	if len(queries) != len(h.retrievers) {
		return nil, &model.ErrLengthMismatch{Left: len(h.retrievers), Right: len(queries)}
	}

	lists := make([][]model.Result, len(h.retrievers))
	for i, r := range h.retrievers {
		results, err := r.Retrieve(queries[i], k)
		if err != nil {
			return nil, err
		}
		lists[i] = results

		h.opts.Logger.WithStrategy(r.Strategy()).Debug("hybrid branch retrieved",
			"candidates", len(results),
		)
	}

	return FuseRRF(k, h.opts.RRFK, lists...)
}
