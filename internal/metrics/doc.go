// Package metrics provides Prometheus instrumentation for the analysis
// pipeline: analysis counts and durations, rule engine match counts, and
// LLM error counts. Each [Metrics] owns its registry so the HTTP server can
// expose it without touching the global default.
package metrics
