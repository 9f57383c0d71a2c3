// Package logging assembles the structured slog loggers used by langdeck.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes helpers for tagging log lines with a component name
// and the per-run correlation identifier. Logs default to stderr so stdout
// stays reserved for command results. A no-op logger is provided for tests
// and wiring code that cannot fail.
package logging
