// Package logging assembles structured slog loggers and formatting helpers used
// across mediagrab.
//
// It owns the configurable console/JSON handlers and routes output to the
// session log file so the interactive terminal only shows prompts and
// diagnostics. Context helpers tag log lines with the session identifier, the
// operation, and the link being processed. A no-op logger is provided for
// tests and wiring code that cannot fail.
package logging
