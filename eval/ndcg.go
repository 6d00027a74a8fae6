package eval

import (
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/rankgo/model"
)

// NDCG computes the normalized discounted cumulative gain over the full
// relevance list. Equivalent to NDCGAt(relevance, len(relevance)).
func NDCG(relevance []float64) (float64, error) {
	return NDCGAt(relevance, len(relevance))
}

// NDCGAt computes NDCG@k for a relevance list given in ranked order.
//
//	DCG@k  = Σ_{i=1..k} (2^rel_i - 1) / log2(i+1)
//	IDCG@k = DCG@k over the relevance values sorted descending
//	NDCG@k = DCG@k / IDCG@k
//
// When IDCG is 0 (all relevances zero) the result is exactly 1.0, so the
// returned value always lies in [0, 1]. Fails with ErrEmptyInput on an
// empty list and ErrInvalidK when k <= 0 or k exceeds the list length.
func NDCGAt(relevance []float64, k int) (float64, error) {
	if len(relevance) == 0 {
		return 0, fmt.Errorf("%w: relevance list is empty", model.ErrEmptyInput)
	}
	if k <= 0 || k > len(relevance) {
		return 0, fmt.Errorf("%w: k=%d, length=%d", model.ErrInvalidK, k, len(relevance))
	}

	dcg := dcgAt(relevance, k)

	ideal := append([]float64(nil), relevance...)
	sort.Sort(sort.Reverse(sort.Float64Slice(ideal)))
	idcg := dcgAt(ideal, k)

	// All-zero relevance: the given order is as good as any, so the ranking
	// is perfect by convention. This also keeps the result in [0, 1].
	if idcg == 0 {
		return 1, nil
	}

	return dcg / idcg, nil
}

func dcgAt(relevance []float64, k int) float64 {
	var dcg float64
	for i := 0; i < k; i++ {
		gain := math.Exp2(relevance[i]) - 1
		dcg += gain / math.Log2(float64(i)+2)
	}
	return dcg
}

// MRR returns the reciprocal rank of the first relevant entry
// (relevance > 0), or 0 when nothing is relevant. Fails with ErrEmptyInput
// on an empty list.
func MRR(relevance []float64) (float64, error) {
	if len(relevance) == 0 {
		return 0, fmt.Errorf("%w: relevance list is empty", model.ErrEmptyInput)
	}

	for i, rel := range relevance {
		if rel > 0 {
			return 1 / float64(i+1), nil
		}
	}
	return 0, nil
}

// PrecisionAt returns the fraction of the top k entries that are relevant
// (relevance > 0). Error conditions match NDCGAt.
func PrecisionAt(relevance []float64, k int) (float64, error) {
	if len(relevance) == 0 {
		return 0, fmt.Errorf("%w: relevance list is empty", model.ErrEmptyInput)
	}
	if k <= 0 || k > len(relevance) {
		return 0, fmt.Errorf("%w: k=%d, length=%d", model.ErrInvalidK, k, len(relevance))
	}

	var relevant int
	for i := 0; i < k; i++ {
		if relevance[i] > 0 {
			relevant++
		}
	}
	return float64(relevant) / float64(k), nil
}
