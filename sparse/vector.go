package sparse

import (
	"sort"

	"github.com/hupe1980/rankgo/internal/math32"
	"github.com/hupe1980/rankgo/model"
)

// Vector is a sparse vector stored as parallel slices of strictly
// increasing indices and their values. Indices are typically term IDs in a
// vocabulary; values are term weights (TF-IDF, BM25, SPLADE scores).
type Vector struct {
	Indices []uint32
	Values  []float32
}

// New creates a validated Vector. It fails with ErrLengthMismatch when the
// slices differ in length and with ErrUnsortedIndices when the indices are
// not strictly increasing.
func New(indices []uint32, values []float32) (Vector, error) {
	if len(indices) != len(values) {
		return Vector{}, &model.ErrLengthMismatch{Left: len(indices), Right: len(values)}
	}

	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return Vector{}, &model.ErrUnsortedIndices{Position: i}
		}
	}

	return Vector{Indices: indices, Values: values}, nil
}

// NewUnchecked creates a Vector without validation. The caller must
// guarantee that indices and values have equal length and that indices are
// strictly increasing.
func NewUnchecked(indices []uint32, values []float32) Vector {
	return Vector{Indices: indices, Values: values}
}

// NNZ returns the number of non-zero elements.
func (v Vector) NNZ() int { return len(v.Indices) }

// Prune returns a new Vector retaining only pairs whose value is strictly
// greater than threshold, preserving relative order. The receiver is not
// modified.
func (v Vector) Prune(threshold float32) Vector {
	indices := make([]uint32, 0, len(v.Indices))
	values := make([]float32, 0, len(v.Values))

	for i, val := range v.Values {
		if val > threshold {
			indices = append(indices, v.Indices[i])
			values = append(values, val)
		}
	}

	return Vector{Indices: indices, Values: values}
}

// TopK returns a new Vector keeping only the k entries with the largest
// absolute values, re-sorted by index. Commonly used with learned sparse
// representations (SPLADE) to cap vector size.
func (v Vector) TopK(k int) Vector {
	if k >= len(v.Indices) {
		return Vector{
			Indices: append([]uint32(nil), v.Indices...),
			Values:  append([]float32(nil), v.Values...),
		}
	}
	if k <= 0 {
		return Vector{Indices: []uint32{}, Values: []float32{}}
	}

	order := make([]int, len(v.Values))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		va := abs32(v.Values[order[a]])
		vb := abs32(v.Values[order[b]])
		if va != vb {
			return va > vb
		}
		return order[a] < order[b]
	})

	kept := order[:k]
	sort.Ints(kept)

	indices := make([]uint32, k)
	values := make([]float32, k)
	for i, idx := range kept {
		indices[i] = v.Indices[idx]
		values[i] = v.Values[idx]
	}

	return Vector{Indices: indices, Values: values}
}

// Norm returns the L2 norm of the vector.
func (v Vector) Norm() float32 {
	return math32.Norm(v.Values)
}

// Normalize returns a unit-length copy of the vector. A zero vector
// normalizes to an empty vector.
func (v Vector) Normalize() Vector {
	norm := v.Norm()
	if norm < 1e-9 {
		return Vector{Indices: []uint32{}, Values: []float32{}}
	}

	values := make([]float32, len(v.Values))
	for i, val := range v.Values {
		values[i] = val / norm
	}

	return Vector{
		Indices: append([]uint32(nil), v.Indices...),
		Values:  values,
	}
}

// Dot computes the dot product of two sparse vectors by merging the two
// ascending index sequences, O(|a|+|b|). Vectors with no overlapping
// indices yield 0.
func Dot(a, b Vector) float32 {
	var ret float32

	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] < b.Indices[j]:
			i++
		case a.Indices[i] > b.Indices[j]:
			j++
		default:
			ret += a.Values[i] * b.Values[j]
			i++
			j++
		}
	}

	return ret
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
