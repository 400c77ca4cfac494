// Package router answers free-text questions against a loaded conference
// mind. It scores passages by word overlap with the question, boosts speakers
// whose detected expertise matches the question, and renders ranked,
// attributed excerpts.
package router
