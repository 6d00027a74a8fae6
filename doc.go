// Package rankgo is a multi-strategy ranking and retrieval core: a BM25
// inverted index, a dense cosine retriever, a sparse dot-product retriever,
// rank-quality metrics (NDCG, MRR, Precision@k), and a LambdaRank gradient
// trainer.
//
// The strategy-specific packages (lexical, dense, sparse) expose typed APIs
// and can be used directly. This root package adds the pieces that span
// strategies: a closed set of query variants behind one Retriever
// interface, reciprocal rank fusion and hybrid retrieval, and a batch
// executor with bounded concurrency.
//
// # Quick start
//
//	idx := lexical.New()
//	idx.AddDocument(0, []string{"sparse", "retrieval"})
//	idx.AddDocument(1, []string{"dense", "vectors"})
//
//	results, err := idx.Retrieve([]string{"sparse"}, 10)
//
// # Concurrency
//
// Index and retriever instances serialize writes internally and allow
// concurrent reads (single-writer, many-reader). Metric and trainer
// functions are pure and safe to call from any goroutine.
//
// # Errors
//
// Every failure is a synchronous contract violation from the taxonomy in
// errors.go — never retried, never partial. Callers should treat them as
// bugs to fix rather than transient conditions.
package rankgo
