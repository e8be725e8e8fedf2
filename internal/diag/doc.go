// Package diag provides the injected diagnostics channel used by the
// extraction and traversal components.
//
// Skipped rows, empty extraction passes, and fallback attempts are reported
// as structured events rather than logged through ambient globals, so callers
// decide where diagnostics go. The JSONReporter emits one JSON object per
// event with a timestamp, level, message, and optional structured fields.
package diag
