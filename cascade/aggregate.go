package cascade

import (
	"sort"
	"strings"

	"infragraph/catalog"
	"infragraph/graph"
)

// CountryImpact is the per-country rollup shown to the caller, ranked
// by severity.
type CountryImpact struct {
	Country          *graph.Node `json:"country"`
	ImpactLevel      ImpactLevel `json:"impact_level"`
	ImpactStrength   float64     `json:"impact_strength"`
	AffectedCapacity float64     `json:"affected_capacity"`
	PathLength       int         `json:"path_length"`
	DependencyChain  []string    `json:"dependency_chain"`
}

// aggregateCountries filters the affected set to country nodes and
// derives each country's affected capacity:
//
//  1. cable sources report their declared per-country capacity share
//     straight from the catalog (authoritative, bypasses decay);
//  2. a direct source->country edge contributes the max over parallel
//     edges of strength*(1-redundancy);
//  3. multi-hop chains multiply strength*(1-redundancy) along every
//     recorded hop; a hop whose edge cannot be found resolves the
//     whole chain to 0 (broken chain, not an error).
//
// Output is ordered by severity tier, then descending capacity.
func aggregateCountries(g *graph.Graph, cat *catalog.Catalog, source *graph.Node, affected []*AffectedNode) []*CountryImpact {
	impacts := make([]*CountryImpact, 0)

	for _, a := range affected {
		if a.Node.Type != graph.NodeTypeCountry {
			continue
		}
		impacts = append(impacts, &CountryImpact{
			Country:          a.Node,
			ImpactLevel:      a.ImpactLevel,
			ImpactStrength:   a.ImpactStrength,
			AffectedCapacity: affectedCapacity(g, cat, source, a),
			PathLength:       a.PathLength,
			DependencyChain:  a.DependencyChain,
		})
	}

	sort.SliceStable(impacts, func(i, j int) bool {
		ri, rj := severityRank(impacts[i].ImpactLevel), severityRank(impacts[j].ImpactLevel)
		if ri != rj {
			return ri < rj
		}
		return impacts[i].AffectedCapacity > impacts[j].AffectedCapacity
	})

	return impacts
}

func affectedCapacity(g *graph.Graph, cat *catalog.Catalog, source *graph.Node, a *AffectedNode) float64 {
	countryCode := strings.TrimPrefix(a.Node.ID, "country:")

	// Cable sources: the declared share is authoritative.
	if source.Type == graph.NodeTypeCable {
		if c, ok := cat.CableByID(strings.TrimPrefix(source.ID, "cable:")); ok {
			for _, served := range c.CountriesServed {
				if code, ok := catalog.NormalizeCountry(served.Country); ok && code == countryCode {
					return served.CapacityShare
				}
			}
		}
	}

	// Direct dependency: strongest parallel edge wins.
	if direct, ok := maxDirectCapacity(g, source.ID, a.Node.ID); ok {
		return direct
	}

	// Indirect: attenuate along the recorded chain.
	return chainCapacity(g, a.DependencyChain)
}

// maxDirectCapacity returns the max of strength*(1-redundancy) over all
// parallel edges from source to the country, if any exist.
func maxDirectCapacity(g *graph.Graph, fromID, toID string) (float64, bool) {
	best, found := 0.0, false
	for _, e := range g.OutgoingEdges(fromID) {
		if e.To != toID {
			continue
		}
		if v := e.Strength * (1 - e.Redundancy); !found || v > best {
			best, found = v, true
		}
	}
	return best, found
}

// chainCapacity multiplies edge capacities along the dependency chain.
// When two consecutive ids are joined by parallel edges the strongest
// one is taken; a missing hop breaks the chain to capacity 0.
func chainCapacity(g *graph.Graph, chain []string) float64 {
	capacity := 1.0
	for i := 0; i+1 < len(chain); i++ {
		hop, ok := maxDirectCapacity(g, chain[i], chain[i+1])
		if !ok {
			return 0
		}
		capacity *= hop
	}
	if len(chain) < 2 {
		return 0
	}
	return capacity
}
