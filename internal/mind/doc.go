// Package mind defines the conference-mind domain model: attributed passages,
// speakers with derived style profiles and skill rankings, and the
// ConferenceMind aggregate that owns cross-speaker themes and tensions.
//
// Derived fields (StyleProfile, Skills, Themes, Tensions) are always replaced
// whole by the pipeline, never patched field-by-field, so a loaded mind is
// either fully analyzed or visibly empty. Treat instances as immutable once
// an ingest run has produced them.
package mind
