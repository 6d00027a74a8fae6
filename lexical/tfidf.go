package lexical

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rankgo/model"
)

// TFVariant selects the term-frequency component of TF-IDF scoring.
type TFVariant int

const (
	// TFLogScaled uses 1 + ln(tf), damping high raw counts.
	TFLogScaled TFVariant = iota
	// TFLinear uses the raw term count.
	TFLinear
)

// IDFVariant selects the inverse-document-frequency component.
type IDFVariant int

const (
	// IDFStandard uses ln(N/df).
	IDFStandard IDFVariant = iota
	// IDFSmoothed uses the BM25-style ln(1 + (N-df+0.5)/(df+0.5)), which is
	// more stable for terms appearing in almost every document.
	IDFSmoothed
)

// TFIDFParams configures TF-IDF scoring over the index.
type TFIDFParams struct {
	TF  TFVariant
	IDF IDFVariant
}

// DefaultTFIDFParams uses log-scaled TF with standard IDF.
var DefaultTFIDFParams = TFIDFParams{
	TF:  TFLogScaled,
	IDF: IDFStandard,
}

// ScoreTFIDF scores a single document against the query terms with TF-IDF.
// Unknown ids and documents sharing no query term score 0.
func (idx *Index) ScoreTFIDF(id uint32, terms []string, optFns ...func(p *TFIDFParams)) float64 {
	params := DefaultTFIDFParams
	for _, fn := range optFns {
		fn(&params)
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.scoreTFIDFLocked(id, terms, params)
}

// RetrieveTFIDF returns up to k documents sharing at least one query term,
// scored with TF-IDF and ranked descending, ties by ascending id.
func (idx *Index) RetrieveTFIDF(terms []string, k int, optFns ...func(p *TFIDFParams)) ([]model.Result, error) {
	params := DefaultTFIDFParams
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

	topK := model.NewTopK(k)

	it := candidates.Iterator()
	for it.HasNext() {
		id := it.Next()
		if score := idx.scoreTFIDFLocked(id, terms, params); score > 0 {
			topK.Push(model.Result{ID: id, Score: float32(score)})
		}
	}

	return topK.Results(), nil
}

func (idx *Index) scoreTFIDFLocked(id uint32, terms []string, params TFIDFParams) float64 {
	n := float64(len(idx.docLengths))

	var score float64
	for _, t := range terms {
		p, ok := idx.postings[t]
		if !ok {
			continue
		}
		count, ok := p.tf[id]
		if !ok {
			continue
		}

		var tf float64
		switch params.TF {
		case TFLinear:
			tf = float64(count)
		default:
			tf = 1 + math.Log(float64(count))
		}

		df := float64(p.docs.GetCardinality())
		var idf float64
		switch params.IDF {
		case IDFSmoothed:
			idf = math.Log(1 + (n-df+0.5)/(df+0.5))
		default:
			idf = math.Log(n / df)
		}

		score += tf * idf
	}

	return score
}
