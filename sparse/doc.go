// Package sparse provides sparse vectors and a dot-product retriever over
// them.
//
// A sparse vector is a pair of parallel slices: strictly increasing indices
// and their values. Index-addressed storage keeps large vocabularies cheap
// (only non-zero terms are held) and makes the dot product a linear
// merge-join over the two index sequences.
//
// Vectors built with New are validated. NewUnchecked skips validation for
// callers that already guarantee the invariant; violating it yields
// undefined scoring results rather than an error.
package sparse
