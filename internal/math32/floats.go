// Package math32 provides float32 vector kernels shared by the dense and
// sparse scorers. This is an internal package - external users should go
// through the retriever packages.
package math32

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

// Norm calculates the L2 norm of a vector.
func Norm(v []float32) float32 {
	return Sqrt(Dot(v, v))
}

// Sqrt is the float32 square root.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
