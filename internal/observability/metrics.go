package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// county-resolution pipeline.
type Metrics struct {
	RecordsRead     prometheus.Counter
	CandidateRows   prometheus.Counter
	RowsResolved    prometheus.Counter
	RowsUnresolved  prometheus.Counter
	PipelineRunning prometheus.Gauge

	// Statewide expansion metrics.
	StatewideExpansions prometheus.Counter
	ExpansionFanout     prometheus.Histogram

	// Resolution metrics.
	FIPSSource    *prometheus.CounterVec // labels: source={supplied,registry}
	BatchDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evac_resolve",
			Name:      "records_read_total",
			Help:      "Raw alert records entering the pipeline.",
		}),
		CandidateRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evac_resolve",
			Name:      "candidate_rows_total",
			Help:      "Candidate county rows after normalization and expansion.",
		}),
		RowsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evac_resolve",
			Name:      "rows_resolved_total",
			Help:      "Candidate rows resolved to a FIPS code.",
		}),
		RowsUnresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evac_resolve",
			Name:      "rows_unresolved_total",
			Help:      "Candidate rows that failed every resolution step.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "evac_resolve",
			Name:      "pipeline_running",
			Help:      "1 while a resolution batch is in flight, 0 otherwise.",
		}),
		StatewideExpansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evac_resolve",
			Name:      "statewide_expansions_total",
			Help:      "Whole-state rows expanded into per-county rows.",
		}),
		ExpansionFanout: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "evac_resolve",
			Name:      "expansion_fanout",
			Help:      "Counties emitted per statewide expansion.",
			Buckets:   []float64{5, 10, 25, 50, 67, 100, 150, 254},
		}),
		FIPSSource: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evac_resolve",
			Name:      "fips_source_total",
			Help:      "Resolved rows by FIPS provenance.",
		}, []string{"source"}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "evac_resolve",
			Name:      "batch_duration_seconds",
			Help:      "Duration of a complete normalize-expand-resolve batch.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.RecordsRead,
		m.CandidateRows,
		m.RowsResolved,
		m.RowsUnresolved,
		m.PipelineRunning,
		m.StatewideExpansions,
		m.ExpansionFanout,
		m.FIPSSource,
		m.BatchDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsRead:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "evac_resolve", Name: "records_read_total"}),
		CandidateRows:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "evac_resolve", Name: "candidate_rows_total"}),
		RowsResolved:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "evac_resolve", Name: "rows_resolved_total"}),
		RowsUnresolved:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "evac_resolve", Name: "rows_unresolved_total"}),
		PipelineRunning:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "evac_resolve", Name: "pipeline_running"}),
		StatewideExpansions: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "evac_resolve", Name: "statewide_expansions_total"}),
		ExpansionFanout:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "evac_resolve", Name: "expansion_fanout"}),
		FIPSSource:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "evac_resolve", Name: "fips_source_total"}, []string{"source"}),
		BatchDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "evac_resolve", Name: "batch_duration_seconds"}),
	}
}
