package rankgo

import (
	"fmt"

	"github.com/hupe1980/rankgo/dense"
	"github.com/hupe1980/rankgo/lexical"
	"github.com/hupe1980/rankgo/model"
	"github.com/hupe1980/rankgo/sparse"
)

// Result is a single entry of a ranked result list.
type Result = model.Result

// Strategy identifies a retrieval strategy. The set is closed: lexical,
// dense, and sparse are the only variants.
type Strategy int

const (
	StrategyLexical Strategy = iota
	StrategyDense
	StrategySparse
)

// String returns a string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyLexical:
		return "lexical"
	case StrategyDense:
		return "dense"
	case StrategySparse:
		return "sparse"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Query is the closed set of query variants, one per strategy. It is
// implemented only by TermQuery, DenseQuery, and SparseQuery.
type Query interface {
	// QueryStrategy returns the strategy this query variant belongs to.
	QueryStrategy() Strategy
}

// TermQuery is an ordered sequence of already-normalized tokens for the
// lexical strategy.
type TermQuery []string

// QueryStrategy implements Query.
func (TermQuery) QueryStrategy() Strategy { return StrategyLexical }

// DenseQuery is an embedding vector for the dense strategy.
type DenseQuery []float32

// QueryStrategy implements Query.
func (DenseQuery) QueryStrategy() Strategy { return StrategyDense }

// SparseQuery is a sparse vector for the sparse strategy.
type SparseQuery sparse.Vector

// QueryStrategy implements Query.
func (SparseQuery) QueryStrategy() Strategy { return StrategySparse }

// Retriever is the capability interface shared by the three strategies.
// Implementations return up to k results ranked by descending score, ties
// by ascending document id.
type Retriever interface {
	// Retrieve runs the query and returns the ranked result list.
	Retrieve(q Query, k int) ([]Result, error)

	// Strategy returns the retriever's strategy variant.
	Strategy() Strategy
}

// Compile-time checks to ensure the adapters cover the strategy set.
var _ Retriever = (*LexicalRetriever)(nil)
var _ Retriever = (*DenseRetriever)(nil)
var _ Retriever = (*SparseRetriever)(nil)

// LexicalRetriever adapts a lexical.Index to the Retriever interface.
type LexicalRetriever struct {
	Index *lexical.Index
}

// NewLexicalRetriever wraps an existing BM25 index.
func NewLexicalRetriever(idx *lexical.Index) *LexicalRetriever {
	return &LexicalRetriever{Index: idx}
}

// Strategy implements Retriever.
func (*LexicalRetriever) Strategy() Strategy { return StrategyLexical }

// Retrieve implements Retriever.
func (r *LexicalRetriever) Retrieve(q Query, k int) ([]Result, error) {
	terms, ok := q.(TermQuery)
	if !ok {
		return nil, &ErrStrategyMismatch{Want: StrategyLexical, Got: q.QueryStrategy()}
	}
	return r.Index.Retrieve(terms, k)
}

// DenseRetriever adapts a dense.Retriever to the Retriever interface.
type DenseRetriever struct {
	Retriever *dense.Retriever
}

// NewDenseRetriever wraps an existing dense retriever.
func NewDenseRetriever(dr *dense.Retriever) *DenseRetriever {
	return &DenseRetriever{Retriever: dr}
}

// Strategy implements Retriever.
func (*DenseRetriever) Strategy() Strategy { return StrategyDense }

// Retrieve implements Retriever.
func (r *DenseRetriever) Retrieve(q Query, k int) ([]Result, error) {
	vec, ok := q.(DenseQuery)
	if !ok {
		return nil, &ErrStrategyMismatch{Want: StrategyDense, Got: q.QueryStrategy()}
	}
	return r.Retriever.Retrieve(vec, k)
}

// SparseRetriever adapts a sparse.Retriever to the Retriever interface.
type SparseRetriever struct {
	Retriever *sparse.Retriever
}

// NewSparseRetriever wraps an existing sparse retriever.
func NewSparseRetriever(sr *sparse.Retriever) *SparseRetriever {
	return &SparseRetriever{Retriever: sr}
}

// Strategy implements Retriever.
func (*SparseRetriever) Strategy() Strategy { return StrategySparse }

// Retrieve implements Retriever.
func (r *SparseRetriever) Retrieve(q Query, k int) ([]Result, error) {
	vec, ok := q.(SparseQuery)
	if !ok {
		return nil, &ErrStrategyMismatch{Want: StrategySparse, Got: q.QueryStrategy()}
	}
	return r.Retriever.Retrieve(sparse.Vector(vec), k)
}
