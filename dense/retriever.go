package dense

import (
	"fmt"
	"sync"

	"github.com/hupe1980/rankgo/internal/math32"
	"github.com/hupe1980/rankgo/model"
)

// Retriever scores documents against a query by cosine similarity.
//
// Writes are serialized internally; reads may run concurrently. The
// dimension is fixed by the first AddDocument call.
type Retriever struct {
	mu        sync.RWMutex
	dimension int
	ids       []uint32
	vectors   [][]float32
	norms     []float32
	byID      map[uint32]int
}

// NewRetriever creates an empty dense retriever. The dimension is taken
// from the first inserted vector.
func NewRetriever() *Retriever {
	return &Retriever{
		byID: make(map[uint32]int),
	}
}

// AddDocument inserts a document embedding. The first call fixes the
// retriever's dimension; later calls with a different vector length fail
// with ErrDimensionMismatch. Empty vectors fail with ErrEmptyInput.
// Re-inserting an existing id replaces the stored vector.
func (r *Retriever) AddDocument(id uint32, vector []float32) error {
	if len(vector) == 0 {
		return fmt.Errorf("%w: vector is empty", model.ErrEmptyInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dimension == 0 {
		r.dimension = len(vector)
	} else if len(vector) != r.dimension {
		return &model.ErrDimensionMismatch{Expected: r.dimension, Actual: len(vector)}
	}

	norm := math32.Norm(vector)

	if pos, ok := r.byID[id]; ok {
		r.vectors[pos] = vector
		r.norms[pos] = norm
		return nil
	}

	r.byID[id] = len(r.ids)
	r.ids = append(r.ids, id)
	r.vectors = append(r.vectors, vector)
	r.norms = append(r.norms, norm)

	return nil
}

// Len returns the number of indexed documents.
func (r *Retriever) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}

// Dimension returns the fixed vector dimension, or 0 before the first
// insert.
func (r *Retriever) Dimension() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dimension
}

// Score returns the cosine similarity between the stored document vector
// and the query. The bool is false when id is not indexed; that is an
// absent-value signal, not an error. A query of the wrong dimension fails
// with ErrDimensionMismatch.
func (r *Retriever) Score(id uint32, query []float32) (float32, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.dimension != 0 && len(query) != r.dimension {
		return 0, false, &model.ErrDimensionMismatch{Expected: r.dimension, Actual: len(query)}
	}

	pos, ok := r.byID[id]
	if !ok {
		return 0, false, nil
	}

	return r.cosine(query, math32.Norm(query), pos), true, nil
}

// Retrieve returns up to k documents ranked by cosine similarity against
// the query, descending, ties by ascending id.
func (r *Retriever) Retrieve(query []float32, k int) ([]model.Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidK, k)
	}
	if len(query) == 0 {
		return nil, fmt.Errorf("%w: query vector is empty", model.ErrEmptyInput)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.ids) == 0 {
		return nil, fmt.Errorf("%w: no documents indexed", model.ErrEmptyInput)
	}
	if len(query) != r.dimension {
		return nil, &model.ErrDimensionMismatch{Expected: r.dimension, Actual: len(query)}
	}

	queryNorm := math32.Norm(query)

	topK := model.NewTopK(k)
	for pos, id := range r.ids {
		topK.Push(model.Result{ID: id, Score: r.cosine(query, queryNorm, pos)})
	}

	return topK.Results(), nil
}

// cosine computes dot(query, doc)/(|query|*|doc|) for the document at pos.
// Zero-norm vectors score 0 so the result is always a number.
func (r *Retriever) cosine(query []float32, queryNorm float32, pos int) float32 {
	docNorm := r.norms[pos]
	if queryNorm == 0 || docNorm == 0 {
		return 0
	}
	return math32.Dot(query, r.vectors[pos]) / (queryNorm * docNorm)
}
