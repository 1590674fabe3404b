package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infragraph/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Cables: []catalog.Cable{
			{
				ID:   "atl1",
				Name: "Atlantic One",
				LandingPoints: []catalog.LandingPoint{
					{Country: "US"},
					{Country: "ES"},
				},
				CountriesServed: []catalog.ServedCountry{
					{Country: "US", CapacityShare: 0.4},
					{Country: "ES", CapacityShare: 0.35, IsRedundant: true},
				},
			},
		},
		Pipelines: []catalog.Pipeline{
			{
				ID:        "transit1",
				Name:      "Transit One",
				Type:      "gas",
				Countries: []string{"RUS", "DEU", "XYZ"},
			},
		},
		Ports: []catalog.Port{
			{ID: "fujairah", Name: "Fujairah", Lat: 25.12, Lon: 56.33, Country: "AE", Type: "oil", Rank: 1},
			{ID: "feeder", Name: "Feeder", Lat: 25.01, Lon: 55.06, Country: "AE", Type: "container", Rank: 10},
			{ID: "faraway", Name: "Far Away", Lat: 51.95, Lon: 4.14, Country: "NL", Type: "container", Rank: 7},
			{ID: "nowhere", Name: "Nowhere", Country: "US", Type: "container", Rank: 3},
			{ID: "mystery", Name: "Mystery", Lat: 1, Lon: 1, Country: "US", Type: "spaceport", Rank: 3},
		},
		Chokepoints: []catalog.Chokepoint{
			{ID: "hormuz_strait", Name: "Strait of Hormuz", Lat: 26.60, Lon: 56.25},
		},
	}
}

func findEdge(t *testing.T, g *Graph, from, to string, et EdgeType) *Edge {
	t.Helper()
	for _, e := range g.OutgoingEdges(from) {
		if e.To == to && e.Type == et {
			return e
		}
	}
	t.Fatalf("no %s edge from %s to %s", et, from, to)
	return nil
}

func hasEdge(g *Graph, from, to string, et EdgeType) bool {
	for _, e := range g.OutgoingEdges(from) {
		if e.To == to && e.Type == et {
			return true
		}
	}
	return false
}

func TestBuildCableEdges(t *testing.T) {
	g := Build(testCatalog())

	_, ok := g.Node("cable:atl1")
	require.True(t, ok)

	us := findEdge(t, g, "cable:atl1", "country:US", EdgeTypeServes)
	assert.Equal(t, 0.4, us.Strength)
	assert.Equal(t, 0.0, us.Redundancy)

	es := findEdge(t, g, "cable:atl1", "country:ES", EdgeTypeServes)
	assert.Equal(t, 0.35, es.Strength)
	assert.Equal(t, 0.5, es.Redundancy, "redundant serve entries get the fixed absorption value")

	landing := findEdge(t, g, "cable:atl1", "country:US", EdgeTypeLandsAt)
	assert.Equal(t, 0.3, landing.Strength)
	assert.Equal(t, 0.5, landing.Redundancy)
}

func TestBuildPipelineEdges(t *testing.T) {
	g := Build(testCatalog())

	// Alpha-3 catalog codes normalize to alpha-2 country nodes.
	ru := findEdge(t, g, "pipeline:transit1", "country:RU", EdgeTypeServes)
	assert.Equal(t, 0.2, ru.Strength)
	assert.Equal(t, 0.3, ru.Redundancy)

	_, ok := g.Node("country:DE")
	assert.True(t, ok)

	// The unmappable "XYZ" entry is dropped without touching the rest.
	assert.Len(t, g.OutgoingEdges("pipeline:transit1"), 2)
}

func TestBuildPortEdges(t *testing.T) {
	g := Build(testCatalog())

	// Rank-1 oil terminal: 0.9 + 0.285 clamps to 1.0, top-5 redundancy.
	serve := findEdge(t, g, "port:fujairah", "country:AE", EdgeTypeServes)
	assert.Equal(t, 1.0, serve.Strength)
	assert.Equal(t, 0.2, serve.Redundancy)

	// Rank-10 container port: 0.7 + 0.15, lower-tier redundancy.
	feeder := findEdge(t, g, "port:feeder", "country:AE", EdgeTypeServes)
	assert.InDelta(t, 0.85, feeder.Strength, 1e-9)
	assert.Equal(t, 0.4, feeder.Redundancy)

	// Strategic ports spill over to trade-route countries.
	spill := findEdge(t, g, "port:fujairah", "country:JP", EdgeTypeTradeRoute)
	assert.Equal(t, 0.35, spill.Strength)
	assert.Equal(t, 0.0, spill.Redundancy)
}

func TestBuildSkipsMalformedRecords(t *testing.T) {
	g := Build(testCatalog())

	_, ok := g.Node("port:nowhere")
	assert.False(t, ok, "port without coordinates must be skipped")

	_, ok = g.Node("port:mystery")
	assert.False(t, ok, "port with unknown type must be skipped")

	// The rest of the build is unaffected.
	_, ok = g.Node("port:fujairah")
	assert.True(t, ok)
}

func TestBuildChokepointEdges(t *testing.T) {
	g := Build(testCatalog())

	// Fujairah and the feeder port sit within the gating radius,
	// Rotterdam does not.
	gate := findEdge(t, g, "chokepoint:hormuz_strait", "port:fujairah", EdgeTypeControlsAccess)
	assert.Equal(t, 0.7, gate.Strength)
	assert.Equal(t, 0.2, gate.Redundancy)
	assert.True(t, hasEdge(g, "chokepoint:hormuz_strait", "port:feeder", EdgeTypeControlsAccess))
	assert.False(t, hasEdge(g, "chokepoint:hormuz_strait", "port:faraway", EdgeTypeControlsAccess))

	// Trade dependency table entries become country edges.
	jp := findEdge(t, g, "chokepoint:hormuz_strait", "country:JP", EdgeTypeTradeDependency)
	assert.Equal(t, 0.8, jp.Strength)
	assert.Equal(t, 0.2, jp.Redundancy)
}

func TestBuildNoDanglingEdges(t *testing.T) {
	g := Build(testCatalog())
	for _, e := range g.Edges {
		_, ok := g.Node(e.From)
		assert.True(t, ok, "dangling From %s", e.From)
		_, ok = g.Node(e.To)
		assert.True(t, ok, "dangling To %s", e.To)
	}
}

func TestStatsSumToNodeCount(t *testing.T) {
	g := Build(testCatalog())
	s := g.Stats()
	assert.Equal(t, s.Nodes, s.Cables+s.Pipelines+s.Ports+s.Chokepoints+s.Countries)
	assert.Equal(t, len(g.Edges), s.Edges)
	assert.Equal(t, 1, s.Cables)
	assert.Equal(t, 1, s.Pipelines)
	assert.Equal(t, 3, s.Ports)
	assert.Equal(t, 1, s.Chokepoints)
}

func TestBuildDeterministic(t *testing.T) {
	cat := testCatalog()
	a, b := Build(cat), Build(cat)

	require.Equal(t, len(a.Edges), len(b.Edges))
	for i := range a.Edges {
		assert.Equal(t, a.Edges[i], b.Edges[i], "edge %d differs between builds", i)
	}
}

func TestPortRankBoost(t *testing.T) {
	assert.InDelta(t, 0.285, portRankBoost(1), 1e-9)
	assert.InDelta(t, 0.15, portRankBoost(10), 1e-9)
	assert.Zero(t, portRankBoost(20))
	assert.Zero(t, portRankBoost(50))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.2))
	assert.Equal(t, 0.5, clamp01(0.5))
	assert.Equal(t, 1.0, clamp01(1.3))
}
