// Package transcript classifies raw transcript text into one of a fixed set
// of formats and normalizes it into clean line-oriented text.
//
// Detection inspects only the first 20 lines, so it is constant-time in the
// transcript size. Ambiguous input always resolves to FormatRaw rather than
// an error; raw is valid input for normalization, and normalizing raw text is
// idempotent.
package transcript
