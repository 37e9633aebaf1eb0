// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: Prometheus collectors on a private registry.

// Package metrics defines the Prometheus collectors for wordgraph queries
// and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query operation labels.
const (
	OpBridge   = "bridge"
	OpPath     = "path"
	OpWalk     = "walk"
	OpGenerate = "generate"
)

// Query result labels.
const (
	ResultOK          = "ok"
	ResultEmpty       = "empty"
	ResultNotFound    = "not_found"
	ResultUnreachable = "unreachable"
)

// Metrics holds the Prometheus collectors of one CLI process.
type Metrics struct {
	registry *prometheus.Registry

	QueriesTotal    *prometheus.CounterVec
	WalkLength      prometheus.Histogram
	InsertedBridges prometheus.Counter
	GraphWords      prometheus.Gauge
	GraphEdges      prometheus.Gauge
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordgraph_queries_total",
				Help: "Total queries by operation and result (ok, empty, not_found, unreachable).",
			},
			[]string{"op", "result"},
		),
		WalkLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordgraph_walk_length_words",
				Help:    "Number of words produced by a random walk.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		InsertedBridges: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordgraph_generate_inserted_words_total",
				Help: "Bridge words spliced into generated text.",
			},
		),
		GraphWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordgraph_graph_words",
				Help: "Distinct words in the loaded corpus.",
			},
		),
		GraphEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordgraph_graph_edges",
				Help: "Distinct adjacent word pairs in the loaded corpus.",
			},
		),
	}
	m.registry.MustRegister(
		m.QueriesTotal,
		m.WalkLength,
		m.InsertedBridges,
		m.GraphWords,
		m.GraphEdges,
	)
	return m
}

// ObserveQuery counts one query outcome.
func (m *Metrics) ObserveQuery(op, result string) {
	m.QueriesTotal.WithLabelValues(op, result).Inc()
}

// SetGraph records the size of the loaded graph.
func (m *Metrics) SetGraph(words, edges int) {
	m.GraphWords.Set(float64(words))
	m.GraphEdges.Set(float64(edges))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
