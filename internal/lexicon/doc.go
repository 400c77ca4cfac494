// Package lexicon holds the static vocabulary tables the heuristic analyzers
// consume: technical terms, expertise-domain keyword sets, theme stop words,
// and contrastive disagreement markers.
//
// The tables are versioned data, kept apart from the scoring code so they can
// be reviewed and tested on their own. Changing a table changes analysis
// output for every re-ingest; bump Version when you do.
package lexicon
