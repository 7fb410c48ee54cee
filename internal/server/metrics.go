package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/evaluator"
)

// Evaluation outcomes used as the outcome label.
const (
	OutcomePassed  = "passed"
	OutcomePartial = "partial"
	OutcomeFailed  = "failed"
)

// Metrics holds the Prometheus collectors for evaluation traffic.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry        *prometheus.Registry
	evaluations     *prometheus.CounterVec
	scores          prometheus.Histogram
	invalidRequests prometheus.Counter
}

// NewMetrics creates the collectors on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "playground_evaluations_total",
			Help: "Total number of evaluated submissions by outcome.",
		}, []string{"outcome"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "playground_evaluation_score",
			Help:    "Distribution of overall evaluation scores.",
			Buckets: []float64{0, 25, 50, 75, 90, 100},
		}),
		invalidRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "playground_invalid_requests_total",
			Help: "Total number of evaluation requests rejected as invalid input.",
		}),
	}

	m.registry.MustRegister(m.evaluations, m.scores, m.invalidRequests)
	return m
}

// ObserveEvaluation records a completed evaluation.
func (m *Metrics) ObserveEvaluation(result *evaluator.EvaluationResult) {
	if m == nil || result == nil {
		return
	}
	m.evaluations.WithLabelValues(Outcome(result)).Inc()
	m.scores.Observe(result.OverallScore)
}

// ObserveInvalidRequest records a request rejected before evaluation.
func (m *Metrics) ObserveInvalidRequest() {
	if m == nil {
		return
	}
	m.invalidRequests.Inc()
}

// Handler returns the HTTP handler exposing the collected metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Outcome classifies an evaluation result for the outcome label.
func Outcome(result *evaluator.EvaluationResult) string {
	switch {
	case result.Passed():
		return OutcomePassed
	case result.PassedCount > 0:
		return OutcomePartial
	default:
		return OutcomeFailed
	}
}
