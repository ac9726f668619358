// Package logs reads back files written by a logging sink.
//
// ParseLine splits a rendered record into its severity, timestamp, source
// location and message. Tail streams the last N lines of a sink with bounded
// memory, resumes from byte offsets, and polls for appended lines in follow
// mode. Callers supply a context so polling stops when the CLI exits.
package logs
