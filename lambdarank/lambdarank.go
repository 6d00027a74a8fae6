package lambdarank

import (
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/rankgo/model"
)

// Options contains configuration options for gradient computation.
type Options struct {
	// Sigma is the steepness of the pairwise logistic. Must be positive.
	Sigma float64

	// K truncates the NDCG objective to the top K positions of the
	// score-sorted order. 0 means the full list. Pairs entirely below the
	// cutoff contribute nothing.
	K int
}

// DefaultOptions contains the default configuration options.
var DefaultOptions = Options{
	Sigma: 1.0,
	K:     0,
}

// WithSigma sets the logistic steepness.
func WithSigma(sigma float64) func(o *Options) {
	return func(o *Options) {
		o.Sigma = sigma
	}
}

// WithK truncates the NDCG objective to the top k positions.
func WithK(k int) func(o *Options) {
	return func(o *Options) {
		o.K = k
	}
}

// ComputeGradients returns one gradient per document from per-document
// model scores and graded relevance judgments, aligned positionally.
//
// For every unordered pair (i, j) with relevance_i > relevance_j:
//
//	lambda_ij = -sigma / (1 + exp(sigma*(score_i - score_j))) * |ΔNDCG_ij|
//
// where ΔNDCG_ij is the NDCG@k change caused by swapping the two documents
// in the current score-sorted order. The higher-relevance member of a pair
// receives +lambda_ij, the lower -lambda_ij; each document's output is the
// signed sum of its pairwise contributions.
//
// Fails with ErrEmptyInput when either slice is empty and with
// ErrLengthMismatch when their lengths differ. Output values are finite for
// any finite input.
func ComputeGradients(scores, relevance []float64, optFns ...func(o *Options)) ([]float64, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(scores) == 0 || len(relevance) == 0 {
		return nil, fmt.Errorf("%w: scores or relevance is empty", model.ErrEmptyInput)
	}
	if len(scores) != len(relevance) {
		return nil, &model.ErrLengthMismatch{Left: len(scores), Right: len(relevance)}
	}

	n := len(scores)
	k := opts.K
	if k <= 0 || k > n {
		k = n
	}

	// One score-sorted pass assigns each document its current rank.
	// Ties break by ascending position for determinism.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] < order[b]
	})
	rank := make([]int, n)
	for r, i := range order {
		rank[i] = r
	}

	// Rank-discount table: 1/log2(rank+2) within the cutoff, 0 below it.
	discount := make([]float64, n)
	for r := 0; r < k; r++ {
		discount[r] = 1 / math.Log2(float64(r)+2)
	}

	gain := make([]float64, n)
	for i, rel := range relevance {
		gain[i] = math.Exp2(rel) - 1
	}

	invIDCG := inverseIdealDCG(gain, k)

	gradients := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if relevance[i] == relevance[j] {
				continue
			}

			hi, lo := i, j
			if relevance[j] > relevance[i] {
				hi, lo = j, i
			}

			// Swapping the pair only moves their two gain/discount products.
			delta := math.Abs((gain[hi] - gain[lo]) * (discount[rank[hi]] - discount[rank[lo]]) * invIDCG)

			lambda := -opts.Sigma / (1 + math.Exp(opts.Sigma*(scores[hi]-scores[lo]))) * delta

			gradients[hi] += lambda
			gradients[lo] -= lambda
		}
	}

	return gradients, nil
}

// inverseIdealDCG returns 1/IDCG@k over the gains, or 0 when every gain is
// zero.
func inverseIdealDCG(gain []float64, k int) float64 {
	ideal := append([]float64(nil), gain...)
	sort.Sort(sort.Reverse(sort.Float64Slice(ideal)))

	var idcg float64
	for r := 0; r < k; r++ {
		idcg += ideal[r] / math.Log2(float64(r)+2)
	}

	if idcg == 0 {
		return 0
	}
	return 1 / idcg
}
