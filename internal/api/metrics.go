package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fake-recruiter-detector/backend/internal/scoring"
)

type metrics struct {
	registry *prometheus.Registry
	analyses *prometheus.CounterVec
	scores   prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recruiter_analyses_total",
			Help: "Recruiter messages analyzed, by risk level.",
		}, []string{"level"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "recruiter_analysis_score",
			Help:    "Distribution of clamped scam-risk scores.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
	}
	m.registry.MustRegister(m.analyses, m.scores, collectors.NewGoCollector())
	for _, level := range []scoring.Level{scoring.LevelLow, scoring.LevelMedium, scoring.LevelHigh} {
		m.analyses.WithLabelValues(level.String())
	}
	return m
}

func (m *metrics) observe(result scoring.Result) {
	m.analyses.WithLabelValues(result.Level.String()).Inc()
	m.scores.Observe(float64(result.Score))
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
