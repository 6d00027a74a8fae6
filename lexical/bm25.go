package lexical

import (
	"fmt"
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rankgo/model"
)

// Variant selects the BM25 scoring variant.
type Variant int

const (
	// BM25Standard is the classic formulation.
	BM25Standard Variant = iota
	// BM25L counters the over-penalization of long documents by adding
	// Delta to the saturated TF term.
	BM25L
	// BM25Plus lower-bounds the TF contribution by adding Delta, so a
	// matching term always counts regardless of document length.
	BM25Plus
)

// Params contains the BM25 scoring parameters.
type Params struct {
	// K1 controls term frequency saturation. Typical range: 1.2-2.0.
	K1 float64

	// B controls document length normalization, in [0, 1].
	// 0 means no normalization, 1 means full normalization.
	B float64

	// Variant selects the scoring variant.
	Variant Variant

	// Delta is the TF shift applied by BM25L and BM25Plus; ignored by
	// BM25Standard.
	Delta float64
}

// DefaultParams contains the standard BM25 parameters.
var DefaultParams = Params{
	K1: 1.2,
	B:  0.75,
}

// BM25LParams returns BM25L parameters with the conventional delta of 0.5.
func BM25LParams() Params {
	return Params{K1: 1.2, B: 0.75, Variant: BM25L, Delta: 0.5}
}

// BM25PlusParams returns BM25+ parameters with the conventional delta of 1.0.
func BM25PlusParams() Params {
	return Params{K1: 1.2, B: 0.75, Variant: BM25Plus, Delta: 1.0}
}

// posting holds the per-term state: the set of documents containing the
// term and the term frequency within each of them.
type posting struct {
	docs *roaring.Bitmap
	tf   map[uint32]uint32
}

// Index is an in-memory BM25 inverted index.
//
// Corpus statistics (document count, lengths, average length) are owned by
// the index instance and updated incrementally on every insertion.
type Index struct {
	mu          sync.RWMutex
	postings    map[string]*posting
	docLengths  map[uint32]int
	totalLength int64
}

// New creates a new empty Index.
func New() *Index {
	return &Index{
		postings:   make(map[string]*posting),
		docLengths: make(map[uint32]int),
	}
}

// AddDocument indexes a document under id. terms is an ordered sequence of
// already-normalized tokens. Re-inserting an existing id replaces the
// previous document.
func (idx *Index) AddDocument(id uint32, terms []string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// If exists, delete first (naive update)
	if _, ok := idx.docLengths[id]; ok {
		idx.removeLocked(id)
	}

	idx.docLengths[id] = len(terms)
	idx.totalLength += int64(len(terms))

	// Count term frequencies
	tf := make(map[string]uint32)
	for _, t := range terms {
		tf[t]++
	}

	for t, count := range tf {
		p, ok := idx.postings[t]
		if !ok {
			p = &posting{
				docs: roaring.New(),
				tf:   make(map[uint32]uint32),
			}
			idx.postings[t] = p
		}
		p.docs.Add(id)
		p.tf[id] = count
	}
}

// RemoveDocument deletes a document from the index. Removing an unknown id
// is a no-op.
func (idx *Index) RemoveDocument(id uint32) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeLocked(id)
}

func (idx *Index) removeLocked(id uint32) {
	length, ok := idx.docLengths[id]
	if !ok {
		return
	}

	for t, p := range idx.postings {
		if p.docs.Contains(id) {
			p.docs.Remove(id)
			delete(p.tf, id)
			if p.docs.IsEmpty() {
				delete(idx.postings, t)
			}
		}
	}

	delete(idx.docLengths, id)
	idx.totalLength -= int64(length)
}

// DocCount returns the number of indexed documents.
func (idx *Index) DocCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docLengths)
}

// DocLength returns the length of a document in terms, 0 for unknown ids.
func (idx *Index) DocLength(id uint32) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.docLengths[id]
}

// AvgDocLength returns the average document length, 0 for an empty index.
func (idx *Index) AvgDocLength() float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.avgDocLengthLocked()
}

func (idx *Index) avgDocLengthLocked() float64 {
	if len(idx.docLengths) == 0 {
		return 0
	}
	return float64(idx.totalLength) / float64(len(idx.docLengths))
}

// TermFrequency returns the frequency of term within document id.
func (idx *Index) TermFrequency(id uint32, term string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	p, ok := idx.postings[term]
	if !ok {
		return 0
	}
	return int(p.tf[id])
}

// DocFrequency returns the number of documents containing term.
func (idx *Index) DocFrequency(term string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	p, ok := idx.postings[term]
	if !ok {
		return 0
	}
	return int(p.docs.GetCardinality())
}

// IDF returns the inverse document frequency of term:
//
//	ln((N - df + 0.5) / (df + 0.5) + 1)
//
// The +1 inside the logarithm keeps the value positive for very common
// terms. Unseen terms return 0, and the result is never negative.
func (idx *Index) IDF(term string) float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	p, ok := idx.postings[term]
	if !ok {
		return 0
	}
	return idx.idfLocked(float64(p.docs.GetCardinality()))
}

func (idx *Index) idfLocked(df float64) float64 {
	n := float64(len(idx.docLengths))
	idf := math.Log((n-df+0.5)/(df+0.5) + 1)
	if idf < 0 {
		return 0
	}
	return idf
}

// Retrieve returns up to k documents sharing at least one query term,
// scored with BM25 and ranked descending, ties by ascending id. Documents
// matching no query term are excluded rather than returned with score 0.
func (idx *Index) Retrieve(terms []string, k int, optFns ...func(p *Params)) ([]model.Result, error) {
	params := DefaultParams
	for _, fn := range optFns {
		fn(&params)
	}

	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidK, k)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: query has no terms", model.ErrEmptyInput)
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.docLengths) == 0 {
		return nil, fmt.Errorf("%w: no documents indexed", model.ErrEmptyInput)
	}

	// Candidate set: union of the query terms' document bitmaps.
	bitmaps := make([]*roaring.Bitmap, 0, len(terms))
	for _, t := range terms {
		if p, ok := idx.postings[t]; ok {
			bitmaps = append(bitmaps, p.docs)
		}
	}
	if len(bitmaps) == 0 {
		return []model.Result{}, nil
	}
	candidates := roaring.FastOr(bitmaps...)

	avgDL := idx.avgDocLengthLocked()

	topK := model.NewTopK(k)

	it := candidates.Iterator()
	for it.HasNext() {
		id := it.Next()

		docLen := float64(idx.docLengths[id])
		norm := params.K1 * (1 - params.B + params.B*(docLen/avgDL))

		var score float64
		for _, t := range terms {
			p, ok := idx.postings[t]
			if !ok {
				continue
			}
			tf, ok := p.tf[id]
			if !ok {
				continue
			}

			idf := idx.idfLocked(float64(p.docs.GetCardinality()))
			ftf := float64(tf)
			tfScore := ftf * (params.K1 + 1) / (ftf + norm)
			if params.Variant != BM25Standard {
				tfScore += params.Delta
			}
			score += idf * tfScore
		}

		if score > 0 {
			topK.Push(model.Result{ID: id, Score: float32(score)})
		}
	}

	return topK.Results(), nil
}
