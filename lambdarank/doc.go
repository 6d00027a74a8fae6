// Package lambdarank computes pairwise learning-to-rank gradients.
//
// LambdaRank scales a logistic pairwise loss gradient by the NDCG impact of
// swapping the pair's positions in the current score-sorted order. The
// output is one gradient per document, ready to be fed to an external
// optimizer; applying the gradients to a model is not this package's
// concern.
package lambdarank
