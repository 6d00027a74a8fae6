package rankgo

import (
	"fmt"

	"github.com/hupe1980/rankgo/model"
)

// The contract-violation taxonomy, re-exported from the model package so
// callers and binding layers can depend on this package alone.
var (
	// ErrEmptyInput is returned when a required collection is empty.
	ErrEmptyInput = model.ErrEmptyInput

	// ErrInvalidK is returned when k is outside the valid range.
	ErrInvalidK = model.ErrInvalidK
)

// ErrDimensionMismatch indicates an embedding dimensionality disagreement.
type ErrDimensionMismatch = model.ErrDimensionMismatch

// ErrLengthMismatch indicates paired sequences of unequal length.
type ErrLengthMismatch = model.ErrLengthMismatch

// ErrUnsortedIndices indicates a sparse-vector index-ordering violation.
type ErrUnsortedIndices = model.ErrUnsortedIndices

// ErrStrategyMismatch indicates a query variant dispatched to a retriever
// of a different strategy.
type ErrStrategyMismatch struct {
	Want Strategy
	Got  Strategy
}

func (e *ErrStrategyMismatch) Error() string {
	return fmt.Sprintf("strategy mismatch: retriever is %s, query is %s", e.Want, e.Got)
}
