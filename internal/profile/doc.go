// Package profile derives per-speaker descriptions from passage text alone:
// a style profile (sentence structure, vocabulary register, question
// frequency, signature phrases) and a ranked list of expertise domains.
//
// Both derivations are pure functions of the speaker's concatenated passage
// text and replace any previous value whole. The heuristics never fail; thin
// evidence just yields empty phrase lists or no qualifying domains.
package profile
