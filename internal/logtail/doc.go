// Package logtail reads the end of the cardgrid log file and formats its JSON
// lines for the terminal.
//
// # Overview
//
// The logger writes one JSON object per line to a file because the TUI owns
// stdout. `cardgrid logs` uses this package to show the last N entries in a
// readable form:
//
//	2026-10-19T10:00:00.000Z INFO [cardgrid.state] refresh complete cards=2 request_id=...
//
// # Reading Log Files
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory is O(maxLines) regardless of file size. Lines come back in file
// order. A missing file yields no lines and no error, since the log is only
// created on first run.
//
// # Formatting
//
// FormatLine decodes a JSON line into an Entry and renders the time, level,
// logger name, and message, then any remaining fields as key=value sorted by
// key. Lines that are not JSON objects (a crash trace, for instance) pass
// through unchanged. Colors come from fatih/color and switch off when stdout
// is not a terminal.
package logtail
