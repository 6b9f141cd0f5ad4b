// Package cli implements the command-line interface for the my tool.
//
// # Overview
//
// The my CLI answers point-in-time questions about the machine it runs on
// and the network it is attached to: addresses, resolvers, clock state,
// identity, and hardware capacity. Every command gathers its facts fresh,
// renders them, and exits; nothing is cached between runs.
//
// # Commands
//
// Network facts:
//
//	my ips [--only public|local|any]
//	my dns
//	my interfaces [--all]
//	my latency [--target HOST:PORT]
//
// Date and time facts:
//
//	my date
//	my time
//	my datetime
//
// Identity facts:
//
//	my hostname
//	my username
//	my device-name
//	my os
//	my architecture
//
// Hardware facts:
//
//	my cpu
//	my ram
//	my disks
//
// Combined snapshot:
//
//	my everything [--timeout DURATION]
//
// # Global Flags
//
//	--format, -f  Output format: text, json (default: text)
//	--no-color    Disable terminal colors
//	--log-level   Log verbosity: debug, info, warn, error (default: warn)
//	--config      Config file path (default: $HOME/.my.yaml)
//
// # Output
//
// Results go to stdout in the selected format; diagnostics go to stderr as
// structured JSON log lines, so piping stdout stays clean. Text output is
// aligned for terminal reading; JSON output is schema-stable and derived
// from the same result value.
//
// # Exit Codes
//
//	0  Success, including partial best-effort results
//	1  Execution failure (a required probe failed)
//	2  Invalid arguments (unknown category, format, or flag value)
package cli
