// Package pipeline wires the ingest and query flows end to end: format
// detection, normalization, segmentation, per-speaker profiling, corpus
// analysis, persistence, and question routing against stored minds.
//
// Ingest is one synchronous call from transcript text to persisted aggregate;
// queries load the aggregate and score it in the same call. There are no
// suspension points and no shared mutable state beyond the store itself.
package pipeline
