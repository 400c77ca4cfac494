// Package mindstore persists conference minds under a configurable root
// directory, one slug-named subdirectory per conference.
//
// Each conference directory holds a meta.json metadata record, the raw and
// normalized transcripts, a SQLite database with the ordered speaker and
// passage rows, per-speaker soul.md and skills.md summary documents, and a
// summit_mind.md composite overview. A directory without meta.json is not a
// conference; Load reports it as absent rather than failing, and missing
// individual artifacts degrade to empty fields.
//
// Saves take a file lock on the store root and replace the conference
// directory whole, so re-ingesting a name is last-write-wins with no stale
// leftovers. Concurrent writers from separate processes serialize on the
// lock; anything beyond that is out of scope.
package mindstore
