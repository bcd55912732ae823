package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the instrumentation for the analysis pipeline.
type Metrics struct {
	registry *prometheus.Registry

	analysesTotal    *prometheus.CounterVec
	ruleMatchesTotal *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	llmErrorsTotal   *prometheus.CounterVec
}

// New creates a Metrics instance backed by its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		analysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docqa_analyses_total",
			Help: "Number of completed analyses by provider and document type.",
		}, []string{"provider", "document_type"}),
		ruleMatchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docqa_rule_matches_total",
			Help: "Number of rule engine matches by rule.",
		}, []string{"rule_id"}),
		analysisDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "docqa_analysis_duration_seconds",
			Help:    "Analysis duration by provider.",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"provider"}),
		llmErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docqa_llm_errors_total",
			Help: "Number of failed LLM calls by provider.",
		}, []string{"provider"}),
	}
}

// Registry returns the underlying registry for exposition.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordAnalysis records one completed analysis.
func (m *Metrics) RecordAnalysis(provider, documentType string, duration time.Duration) {
	m.analysesTotal.WithLabelValues(provider, documentType).Inc()
	m.analysisDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordRuleMatches records rule engine matches for one document.
func (m *Metrics) RecordRuleMatches(ruleID string, count int) {
	if count <= 0 {
		return
	}
	m.ruleMatchesTotal.WithLabelValues(ruleID).Add(float64(count))
}

// RecordLLMError records a failed LLM call.
func (m *Metrics) RecordLLMError(provider string) {
	m.llmErrorsTotal.WithLabelValues(provider).Inc()
}
