package model

import (
	"errors"
	"fmt"
)

// Contract-violation errors. Every failure in the core is one of these:
// synchronous, all-or-nothing, and a bug in the caller rather than a
// transient condition.
var (
	// ErrEmptyInput is returned when a required collection is empty, such as
	// a query with no terms or a retriever holding zero documents.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidK is returned when k is outside the valid range for the
	// operation.
	ErrInvalidK = errors.New("invalid k")
)

// ErrDimensionMismatch indicates an embedding dimensionality disagreement
// between a vector and the retriever holding it.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrLengthMismatch indicates paired sequences of unequal length, such as
// sparse indices/values or scores/relevance.
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d vs %d", e.Left, e.Right)
}

// ErrUnsortedIndices indicates a sparse-vector ordering violation: the index
// at Position is not strictly greater than its predecessor.
type ErrUnsortedIndices struct {
	Position int
}

func (e *ErrUnsortedIndices) Error() string {
	return fmt.Sprintf("indices not strictly increasing at position %d", e.Position)
}
