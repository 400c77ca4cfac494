// Package analysis computes cross-speaker findings over a whole corpus:
// ranked theme frequencies and pairwise tension signals. Both are pure
// functions of the speakers list and are recomputed whole on every ingest.
package analysis
