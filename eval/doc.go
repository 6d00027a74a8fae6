// Package eval provides rank-quality metrics over graded relevance
// judgments.
//
// All functions are pure: they take a relevance list aligned positionally
// with a ranked candidate list and return a score, holding no state. NDCG
// is the primary metric; MRR and Precision@k are binary-relevance
// companions (any relevance > 0 counts as relevant).
package eval
