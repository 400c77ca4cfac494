// Package ipc exposes the confmind pipeline over JSON-RPC Unix sockets and
// ships the matching client used by tool integrations.
//
// It owns socket lifecycle management, request/response DTOs, and conversions
// between domain models and lightweight wire representations. Pipeline errors
// cross the wire as response fields rather than RPC faults, so a missing
// conference reads as a message, not a failure.
package ipc
