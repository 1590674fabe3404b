package cascade

import (
	"strings"

	"infragraph/catalog"
	"infragraph/graph"
)

const maxAlternatives = 5

// Alternative is a candidate reroute target for a disrupted cable.
type Alternative struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CapacityShare float64 `json:"capacity_share"`
}

// findRedundancies surfaces up to five other cables sharing at least
// one served country with the disrupted cable, each annotated with the
// average capacity share across the overlapping countries, a proxy for
// reroute headroom. Non-cable sources always get an empty list.
func findRedundancies(cat *catalog.Catalog, source *graph.Node) []Alternative {
	alternatives := make([]Alternative, 0)
	if source.Type != graph.NodeTypeCable {
		return alternatives
	}
	disrupted, ok := cat.CableByID(strings.TrimPrefix(source.ID, "cable:"))
	if !ok {
		return alternatives
	}

	servedBySource := make(map[string]bool)
	for _, served := range disrupted.CountriesServed {
		if code, ok := catalog.NormalizeCountry(served.Country); ok {
			servedBySource[code] = true
		}
	}

	for i := range cat.Cables {
		other := &cat.Cables[i]
		if other.ID == disrupted.ID {
			continue
		}

		overlapShare, overlapCount := 0.0, 0
		for _, served := range other.CountriesServed {
			if code, ok := catalog.NormalizeCountry(served.Country); ok && servedBySource[code] {
				overlapShare += served.CapacityShare
				overlapCount++
			}
		}
		if overlapCount == 0 {
			continue
		}

		alternatives = append(alternatives, Alternative{
			ID:            other.ID,
			Name:          other.Name,
			CapacityShare: overlapShare / float64(overlapCount),
		})
		if len(alternatives) == maxAlternatives {
			break
		}
	}

	return alternatives
}
