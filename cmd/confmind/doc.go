// Package main hosts the confmind CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into pipeline
// runs against the local mind store: transcript ingestion, question routing,
// speaker and theme inspection, markdown export, and configuration
// scaffolding. The serve command exposes the same operations over a JSON-RPC
// unix socket for other tools.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
