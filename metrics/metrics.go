// Package metrics exposes Prometheus collectors for shortest-path queries.
//
// A Collector implements dijkstra.Observer; attach it with
// dijkstra.WithObserver(c) and every finished query updates the counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/store"
)

// Namespace prefixes every metric name.
const Namespace = "lvroute"

// Collector groups the query and store metrics.
type Collector struct {
	// QueriesTotal counts queries, labeled by strategy and outcome.
	QueriesTotal *prometheus.CounterVec

	// QueryDuration measures query latency in seconds, labeled by strategy.
	QueryDuration *prometheus.HistogramVec

	// SettledNodes observes how many nodes each query marked PERMANENT.
	SettledNodes prometheus.Histogram

	// Relaxations counts successful distance improvements across all queries.
	Relaxations prometheus.Counter

	// Nodes and HalfLinks track the size of the last recorded store.
	Nodes     prometheus.Gauge
	HalfLinks prometheus.Gauge
}

// New creates the collectors and registers them on reg. A nil reg skips
// registration, which is convenient in tests.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "queries_total",
				Help:      "Total number of shortest-path queries",
			},
			[]string{"strategy", "outcome"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "query_duration_seconds",
				Help:      "Duration of shortest-path queries in seconds",
				// Bounded graphs: microseconds for the common case.
				Buckets: []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 1e-2},
			},
			[]string{"strategy"},
		),
		SettledNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "settled_nodes",
				Help:      "Nodes marked permanent per query",
				Buckets:   prometheus.LinearBuckets(1, 5, 7),
			},
		),
		Relaxations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "relaxations_total",
				Help:      "Total number of successful distance relaxations",
			},
		),
		Nodes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "store_nodes",
				Help:      "Number of nodes in the graph store",
			},
		),
		HalfLinks: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "store_half_links",
				Help:      "Number of half-links in the graph store",
			},
		),
	}
	if reg == nil {
		return c, nil
	}
	for _, col := range c.collectors() {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.QueriesTotal, c.QueryDuration, c.SettledNodes, c.Relaxations, c.Nodes, c.HalfLinks}
}

// ObserveQuery implements dijkstra.Observer.
func (c *Collector) ObserveQuery(st dijkstra.Stats) {
	strategy := st.Strategy.String()
	c.QueriesTotal.WithLabelValues(strategy, string(st.Outcome)).Inc()
	c.QueryDuration.WithLabelValues(strategy).Observe(st.Duration.Seconds())
	if st.Outcome == dijkstra.OutcomeNotFound || st.Outcome == dijkstra.OutcomeError {
		return
	}
	c.SettledNodes.Observe(float64(st.Settled))
	c.Relaxations.Add(float64(st.Relaxations))
}

// RecordStore sets the size gauges from s.
func (c *Collector) RecordStore(s store.Reader) {
	nodes := s.Nodes()
	half := 0
	for _, n := range nodes {
		half += n.Degree()
	}
	c.Nodes.Set(float64(len(nodes)))
	c.HalfLinks.Set(float64(half))
}

var _ dijkstra.Observer = (*Collector)(nil)
