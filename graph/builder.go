package graph

import (
	"infragraph/catalog"
	"infragraph/logger"
	"infragraph/metrics"
)

// Build synthesizes the dependency graph from the reference catalogs.
// The synthesis rules are fixed policy (see policy.go), so for a given
// catalog the resulting graph is fully deterministic: nodes come from
// the catalog slices in order, edges are appended in rule order.
//
// Builder errors are non-fatal per record: a malformed entry
// (unmappable country code, missing coordinates) is skipped and logged,
// never aborts the whole build.
func Build(cat *catalog.Catalog) *Graph {
	b := &builder{g: New(), cat: cat}

	for i := range cat.Cables {
		b.addCable(&cat.Cables[i])
	}
	for i := range cat.Pipelines {
		b.addPipeline(&cat.Pipelines[i])
	}
	for i := range cat.Ports {
		b.addPort(&cat.Ports[i])
	}
	for i := range cat.Chokepoints {
		b.addChokepoint(&cat.Chokepoints[i])
	}

	s := b.g.Stats()
	logger.Info(logger.StatusGraph, "Graph built: %d nodes, %d edges (%d skipped records)", s.Nodes, s.Edges, b.skipped)
	return b.g
}

type builder struct {
	g       *Graph
	cat     *catalog.Catalog
	skipped int
}

func (b *builder) skip(status logger.StatusCode, format string, args ...interface{}) {
	b.skipped++
	metrics.CatalogRecordsSkipped.Inc()
	logger.Warn(status, format, args...)
}

// ensureCountry creates the country node on demand so no edge ever
// dangles.
func (b *builder) ensureCountry(alpha2 string) string {
	id := CountryID(alpha2)
	if _, ok := b.g.Nodes[id]; !ok {
		b.g.AddNode(&Node{
			ID:   id,
			Type: NodeTypeCountry,
			Name: catalog.CountryName(alpha2),
		})
	}
	return id
}

func (b *builder) addCable(c *catalog.Cable) {
	if c.ID == "" {
		b.skip(logger.StatusCable, "Skipping cable with empty id (%q)", c.Name)
		return
	}

	node := &Node{
		ID:   CableID(c.ID),
		Type: NodeTypeCable,
		Name: c.Name,
		Metadata: map[string]interface{}{
			"capacity_tbps": c.CapacityTbps,
			"rfs_year":      c.RFSYear,
			"owners":        c.Owners,
		},
	}
	if len(c.Points) > 0 {
		node.Coordinates = &c.Points[0]
	}
	b.g.AddNode(node)

	// Declared capacity shares become serves edges; the catalog's
	// redundancy flag grants a fixed absorption value.
	for _, served := range c.CountriesServed {
		code, ok := catalog.NormalizeCountry(served.Country)
		if !ok {
			b.skip(logger.StatusCable, "Cable %s: unmappable country %q, skipping entry", c.ID, served.Country)
			continue
		}
		redundancy := 0.0
		if served.IsRedundant {
			redundancy = redundantServeValue
		}
		b.g.AddEdge(&Edge{
			From:       node.ID,
			To:         b.ensureCountry(code),
			Type:       EdgeTypeServes,
			Strength:   clamp01(served.CapacityShare),
			Redundancy: redundancy,
		})
	}

	// Every physical landing is a fixed-weight dependency.
	for _, lp := range c.LandingPoints {
		code, ok := catalog.NormalizeCountry(lp.Country)
		if !ok {
			b.skip(logger.StatusCable, "Cable %s: unmappable landing country %q, skipping entry", c.ID, lp.Country)
			continue
		}
		b.g.AddEdge(&Edge{
			From:       node.ID,
			To:         b.ensureCountry(code),
			Type:       EdgeTypeLandsAt,
			Strength:   landsAtStrength,
			Redundancy: landsAtRedundancy,
		})
	}
}

func (b *builder) addPipeline(p *catalog.Pipeline) {
	if p.ID == "" {
		b.skip(logger.StatusPipe, "Skipping pipeline with empty id (%q)", p.Name)
		return
	}

	node := &Node{
		ID:   PipelineID(p.ID),
		Type: NodeTypePipeline,
		Name: p.Name,
		Metadata: map[string]interface{}{
			"type":     p.Type,
			"status":   p.Status,
			"capacity": p.Capacity,
			"operator": p.Operator,
		},
	}
	if len(p.Points) > 0 {
		node.Coordinates = &p.Points[0]
	}
	b.g.AddNode(node)

	for _, country := range p.Countries {
		code, ok := catalog.NormalizeCountry(country)
		if !ok {
			b.skip(logger.StatusPipe, "Pipeline %s: unmappable country %q, skipping entry", p.ID, country)
			continue
		}
		b.g.AddEdge(&Edge{
			From:       node.ID,
			To:         b.ensureCountry(code),
			Type:       EdgeTypeServes,
			Strength:   pipelineStrength,
			Redundancy: pipelineRedundancy,
		})
	}
}

func (b *builder) addPort(p *catalog.Port) {
	if p.ID == "" {
		b.skip(logger.StatusPort, "Skipping port with empty id (%q)", p.Name)
		return
	}
	if p.Lat == 0 && p.Lon == 0 {
		b.skip(logger.StatusPort, "Port %s: missing coordinates, skipping record", p.ID)
		return
	}
	typeWeight, ok := portTypeWeights[p.Type]
	if !ok {
		b.skip(logger.StatusPort, "Port %s: unknown type %q, skipping record", p.ID, p.Type)
		return
	}
	code, ok := catalog.NormalizeCountry(p.Country)
	if !ok {
		b.skip(logger.StatusPort, "Port %s: unmappable country %q, skipping record", p.ID, p.Country)
		return
	}

	node := &Node{
		ID:          PortID(p.ID),
		Type:        NodeTypePort,
		Name:        p.Name,
		Coordinates: &catalog.Coordinate{Lat: p.Lat, Lon: p.Lon},
		Metadata: map[string]interface{}{
			"port_type": p.Type,
			"rank":      p.Rank,
			"country":   code,
		},
	}
	b.g.AddNode(node)

	b.g.AddEdge(&Edge{
		From:       node.ID,
		To:         b.ensureCountry(code),
		Type:       EdgeTypeServes,
		Strength:   clamp01(typeWeight + portRankBoost(p.Rank)),
		Redundancy: portRedundancy(p.Rank),
	})

	// Strategic ports spill over to distant countries relying on
	// their route.
	for _, spill := range tradeRoutes[p.ID] {
		spillCode, ok := catalog.NormalizeCountry(spill.Country)
		if !ok || spillCode == code {
			continue
		}
		b.g.AddEdge(&Edge{
			From:       node.ID,
			To:         b.ensureCountry(spillCode),
			Type:       EdgeTypeTradeRoute,
			Strength:   spill.Strength,
			Redundancy: 0,
			Metadata:   map[string]interface{}{"reason": spill.Reason},
		})
	}
}

func (b *builder) addChokepoint(c *catalog.Chokepoint) {
	if c.ID == "" {
		b.skip(logger.StatusChoke, "Skipping chokepoint with empty id (%q)", c.Name)
		return
	}
	if c.Lat == 0 && c.Lon == 0 {
		b.skip(logger.StatusChoke, "Chokepoint %s: missing coordinates, skipping record", c.ID)
		return
	}

	node := &Node{
		ID:          ChokepointID(c.ID),
		Type:        NodeTypeChokepoint,
		Name:        c.Name,
		Coordinates: &catalog.Coordinate{Lat: c.Lat, Lon: c.Lon},
		Metadata:    map[string]interface{}{"description": c.Description},
	}
	b.g.AddNode(node)

	// The chokepoint gates every port within the fixed radius.
	here := catalog.Coordinate{Lat: c.Lat, Lon: c.Lon}
	for i := range b.cat.Ports {
		p := &b.cat.Ports[i]
		portNodeID := PortID(p.ID)
		if _, ok := b.g.Nodes[portNodeID]; !ok {
			continue // port record was skipped
		}
		dist := catalog.HaversineKm(here, catalog.Coordinate{Lat: p.Lat, Lon: p.Lon})
		if dist > chokepointPortRadiusKm {
			continue
		}
		b.g.AddEdge(&Edge{
			From:       node.ID,
			To:         portNodeID,
			Type:       EdgeTypeControlsAccess,
			Strength:   chokepointPortStrength,
			Redundancy: chokepointPortRedundancy,
			Metadata:   map[string]interface{}{"distance_km": dist},
		})
	}

	for _, dep := range chokepointDependencies[c.ID] {
		code, ok := catalog.NormalizeCountry(dep.Country)
		if !ok {
			b.skip(logger.StatusChoke, "Chokepoint %s: unmappable country %q, skipping entry", c.ID, dep.Country)
			continue
		}
		b.g.AddEdge(&Edge{
			From:       node.ID,
			To:         b.ensureCountry(code),
			Type:       EdgeTypeTradeDependency,
			Strength:   dep.Strength,
			Redundancy: dep.Redundancy,
			Metadata:   map[string]interface{}{"reason": dep.Reason},
		})
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
