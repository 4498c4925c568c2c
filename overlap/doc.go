// Package overlap implements the overlapping-model pattern extractor: it
// slides a window of a fixed size over an input grid under a chosen set
// of orientations, deduplicates the resulting windows into a pattern
// table, and derives the per-direction adjacency relation a GlobalStats
// is built from. It is the bridge between "here is a sample image" and
// the pattern-level model the solver actually runs against.
package overlap
