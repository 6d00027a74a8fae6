// Package model defines the shared types of the retrieval core: ranked
// results, the deterministic result ordering, and the contract-violation
// error taxonomy used by every retriever and scoring function.
package model
