// Package dense provides a brute-force cosine-similarity retriever over
// fixed-dimension embedding vectors.
//
// The first inserted vector fixes the retriever's dimension; every later
// insert and query must match it. Scores are cosine similarities in
// [-1, 1], with zero-norm vectors scoring 0 by convention.
package dense
