// Package logging assembles the structured slog loggers used across tonearm.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// provides attribute helpers plus a no-op logger for tests and wiring code
// that cannot fail. Components receive an injected *slog.Logger carrying a
// "component" attribute; there is no process-global logger state.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
