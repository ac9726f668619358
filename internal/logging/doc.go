// Package logging provides the leveled line logger used by debuglog hosts.
//
// A Logger gates records on a minimum Severity, renders each one as
//
//	<LEVEL> [<YYYY-MM-DD HH:MM:SS>] (<file>:<line>) <message>
//
// and writes it to an append-mode file sink when one is set, or to the
// fallback stream (stderr unless overridden) otherwise. File sinks are
// flushed after every record. The same renderer backs a slog.Handler so
// code that prefers structured calls emits identical lines with trailing
// key=value attributes.
//
// Loggers are instances, not process globals: construct one at startup with
// New or NewFromConfig, hand it to call sites, and Close it on shutdown to
// release the sink.
package logging
