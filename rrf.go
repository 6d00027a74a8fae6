package rankgo

import (
	"fmt"

	"github.com/hupe1980/rankgo/model"
)

// DefaultRRFK is the conventional constant in the RRF formula.
const DefaultRRFK = 60

// FuseRRF combines ranked result lists from different strategies using
// Reciprocal Rank Fusion and returns up to k fused results. It fails with
// ErrInvalidK when k <= 0.
//
// Each document scores 1/(rrfK + rank + 1) per list it appears in, summed
// across lists. rrfK dampens the dominance of top ranks; <= 0 falls back to
// DefaultRRFK. Fused results are ranked descending, ties by ascending id.
func FuseRRF(k int, rrfK int, lists ...[]model.Result) ([]model.Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidK, k)
	}
	if rrfK <= 0 {
		rrfK = DefaultRRFK
	}

	fused := make(map[uint32]float32)
	for _, list := range lists {
		for rank, r := range list {
			fused[r.ID] += 1 / float32(rrfK+rank+1)
		}
	}

	topK := model.NewTopK(k)
	for id, score := range fused {
		topK.Push(model.Result{ID: id, Score: score})
	}

	return topK.Results(), nil
}
