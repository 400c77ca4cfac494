// Package logging constructs the slog loggers confmind uses: a compact
// console format for interactive use and JSON for machine consumption, with
// optional file outputs alongside stdout/stderr.
package logging
