package cascade

import (
	"sync"
	"time"

	"infragraph/catalog"
	"infragraph/graph"
	"infragraph/logger"
	"infragraph/metrics"
)

// Result is the full answer to one disruption query. It is computed
// fresh per query and never persisted.
type Result struct {
	Source            *graph.Node      `json:"source"`
	DisruptionLevel   float64          `json:"disruption_level"`
	AffectedNodes     []*AffectedNode  `json:"affected_nodes"`
	CountriesAffected []*CountryImpact `json:"countries_affected"`
	Redundancies      []Alternative    `json:"redundancies"`
}

// Service owns the cached dependency graph and answers cascade
// queries. The graph is rebuilt lazily on first use and after
// Invalidate; the mutex makes the build-or-reuse check a compute-once
// guard, so concurrent queries never trigger duplicate builds.
// There is no TTL: correctness depends on the caller invalidating
// after reference-data changes.
type Service struct {
	mu  sync.Mutex
	cat *catalog.Catalog
	g   *graph.Graph
}

// NewService creates a Service over the given reference catalogs.
func NewService(cat *catalog.Catalog) *Service {
	return &Service{cat: cat}
}

// GetOrBuild returns the cached graph, building it on first use.
func (s *Service) GetOrBuild() *graph.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.g != nil {
		metrics.GraphCacheHits.Inc()
		return s.g
	}
	metrics.GraphCacheMisses.Inc()

	start := time.Now()
	s.g = graph.Build(s.cat)
	metrics.GraphBuilds.Inc()
	metrics.GraphBuildDuration.Observe(float64(time.Since(start).Milliseconds()))
	return s.g
}

// Invalidate drops the cached graph; the next query rebuilds it.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g = nil
	logger.Info(logger.StatusGraph, "Graph cache invalidated")
}

// Stats reports diagnostic counts for the (possibly freshly built)
// graph.
func (s *Service) Stats() graph.Stats {
	return s.GetOrBuild().Stats()
}

// Calculate computes the propagated, redundancy-adjusted impact of
// disrupting the named node. disruptionLevel must be in (0,1]; values
// outside that range fall back to 1.0 (full disruption). An unknown
// source id yields nil, not an error: callers branch on nullability.
func (s *Service) Calculate(sourceID string, disruptionLevel float64) *Result {
	if disruptionLevel <= 0 || disruptionLevel > 1 {
		disruptionLevel = 1.0
	}

	g := s.GetOrBuild()
	source, ok := g.Node(sourceID)
	if !ok {
		metrics.CascadesUnknownSource.Inc()
		logger.Warn(logger.StatusCascade, "Unknown cascade source %q", sourceID)
		return nil
	}

	affected := propagate(g, sourceID, disruptionLevel)
	countries := aggregateCountries(g, s.cat, source, affected)
	redundancies := findRedundancies(s.cat, source)

	metrics.CascadesComputed.WithLabelValues(string(source.Type)).Inc()
	logger.Info(logger.StatusCascade, "Cascade from %s (level %.2f): %d nodes, %d countries, %d alternatives",
		sourceID, disruptionLevel, len(affected), len(countries), len(redundancies))

	return &Result{
		Source:            source,
		DisruptionLevel:   disruptionLevel,
		AffectedNodes:     affected,
		CountriesAffected: countries,
		Redundancies:      redundancies,
	}
}
