// Package logging wraps the standard library slog package with defaults
// shared by every command: structured JSON records written to stderr, the
// module name and version attached to each record, and flexible log level
// parsing from either the LOG_LEVEL environment variable or an explicit
// --log-level flag.
//
// stderr is the diagnostic stream: probe results go to stdout, warnings
// about degraded probes go here. The default level is warn so a clean run
// prints nothing but its results.
//
// Usage:
//
//	logging.SetDefaultStructuredLoggerWithLevel("my", version, "warn")
//	slog.Warn("probe failed; omitting from snapshot", "category", "dns")
package logging
