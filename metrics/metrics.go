package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GraphBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "infragraph_graph_builds_total",
		Help: "Total number of dependency graph builds.",
	})

	GraphBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "infragraph_graph_build_duration_ms",
		Help:    "Dependency graph build latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})

	GraphCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "infragraph_graph_cache_hits_total",
		Help: "Cascade queries served from the cached graph.",
	})

	GraphCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "infragraph_graph_cache_misses_total",
		Help: "Cascade queries that triggered a graph rebuild.",
	})

	CascadesComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "infragraph_cascades_computed_total",
		Help: "Total cascade computations, labelled by source node type.",
	}, []string{"source_type"})

	CascadesUnknownSource = promauto.NewCounter(prometheus.CounterOpts{
		Name: "infragraph_cascades_unknown_source_total",
		Help: "Cascade queries naming a node id not present in the graph.",
	})

	CatalogRecordsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "infragraph_catalog_records_skipped_total",
		Help: "Malformed reference records skipped during graph builds.",
	})
)
