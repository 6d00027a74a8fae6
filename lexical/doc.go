// Package lexical provides a BM25 inverted index for keyword retrieval,
// with TF-IDF scoring available over the same postings.
//
// Documents are added as sequences of already-normalized tokens;
// tokenization and text normalization are the caller's concern. Per-term
// document sets are kept in roaring bitmaps, so candidate collection for a
// query is a bitmap union and document frequency is a cardinality lookup.
//
// # Parameters
//
// Uses standard BM25 parameters by default: k1=1.2, b=0.75
//
// # Thread Safety
//
// The index is safe for concurrent reads and writes.
package lexical
