package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	OptimizationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offeropt_optimizations_total",
			Help: "Count of optimization calls by outcome.",
		},
		[]string{"outcome"},
	)

	OptimizationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "offeropt_optimization_duration_seconds",
		Help:    "Duration of optimization calls.",
		Buckets: prometheus.DefBuckets,
	})

	CandidatesEvaluatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offeropt_candidates_evaluated_total",
		Help: "Count of (model, offer) candidates submitted for optimization.",
	})
)

func init() {
	prometheus.MustRegister(OptimizationsTotal, OptimizationDuration, CandidatesEvaluatedTotal)
}
