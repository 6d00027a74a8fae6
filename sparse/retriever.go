package sparse

import (
	"fmt"
	"sync"

	"github.com/hupe1980/rankgo/model"
)

// Retriever scores documents against a query by sparse dot product.
//
// Writes are serialized internally; reads may run concurrently.
type Retriever struct {
	mu      sync.RWMutex
	ids     []uint32
	vectors []Vector
	byID    map[uint32]int
}

// NewRetriever creates an empty sparse retriever.
func NewRetriever() *Retriever {
	return &Retriever{
		byID: make(map[uint32]int),
	}
}

// AddDocument inserts a document with its sparse representation.
// Re-inserting an existing id replaces the stored vector.
func (r *Retriever) AddDocument(id uint32, vector Vector) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pos, ok := r.byID[id]; ok {
		r.vectors[pos] = vector
		return
	}

	r.byID[id] = len(r.ids)
	r.ids = append(r.ids, id)
	r.vectors = append(r.vectors, vector)
}

// Len returns the number of indexed documents.
func (r *Retriever) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}

// Score returns the dot product between the stored document vector and the
// query. The second return value is false when id is not indexed.
func (r *Retriever) Score(id uint32, query Vector) (float32, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.byID[id]
	if !ok {
		return 0, false
	}
	return Dot(query, r.vectors[pos]), true
}

// Retrieve returns up to k documents ranked by dot product against the
// query, descending, ties by ascending id.
func (r *Retriever) Retrieve(query Vector, k int) ([]model.Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidK, k)
	}
	if query.NNZ() == 0 {
		return nil, fmt.Errorf("%w: query vector has no entries", model.ErrEmptyInput)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.ids) == 0 {
		return nil, fmt.Errorf("%w: no documents indexed", model.ErrEmptyInput)
	}

	topK := model.NewTopK(k)
	for pos, id := range r.ids {
		topK.Push(model.Result{ID: id, Score: Dot(query, r.vectors[pos])})
	}

	return topK.Results(), nil
}
