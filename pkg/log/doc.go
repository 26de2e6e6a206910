// Package log provides structured event capture for kitchen timers.
//
// This package defines the Logger interface and the Event type used to record
// every state change of a countdown engine and the cooking timer built on it.
// It is separate from operational logging (slog): event capture produces a
// complete machine-readable trace of a cooking session that can be replayed
// or summarized later.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write to a binary file
//	cfg.Logger, _ = log.NewFileLogger("kitchen.tlog")
//
//	// Both: use MultiLogger
//	cfg.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Kinds
//
// Engine events (start, pause, resume, reset, configure, tick, complete,
// close) carry the phase transition and the remaining/configured seconds.
// Cooking timer events add the selected mode (mode) or the outcome of the
// completion alert (alert).
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .tlog extension.
// The "tastehub log" command provides viewing and statistics.
package log
