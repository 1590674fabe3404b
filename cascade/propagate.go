package cascade

import (
	"infragraph/graph"
)

const (
	// Traversal never goes deeper than three hops from the source;
	// beyond that the attenuation makes impact estimates meaningless.
	maxDepth = 3

	// Edges contributing less than 5% impact are pruned as noise and
	// do not propagate further.
	pruneThreshold = 0.05
)

// ImpactLevel is the severity tier of a propagated impact.
type ImpactLevel string

const (
	ImpactCritical ImpactLevel = "critical"
	ImpactHigh     ImpactLevel = "high"
	ImpactMedium   ImpactLevel = "medium"
	ImpactLow      ImpactLevel = "low"
)

// impactLevelFor assigns the severity tier by fixed thresholds.
func impactLevelFor(strength float64) ImpactLevel {
	switch {
	case strength > 0.8:
		return ImpactCritical
	case strength > 0.5:
		return ImpactHigh
	case strength > 0.2:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// severityRank orders tiers for sorting (critical first).
func severityRank(level ImpactLevel) int {
	switch level {
	case ImpactCritical:
		return 0
	case ImpactHigh:
		return 1
	case ImpactMedium:
		return 2
	default:
		return 3
	}
}

// estimatedRecovery maps a severity tier to a coarse restoration
// window shown in the dashboard.
func estimatedRecovery(level ImpactLevel) string {
	switch level {
	case ImpactCritical:
		return "6-12 months"
	case ImpactHigh:
		return "3-6 months"
	case ImpactMedium:
		return "1-3 months"
	default:
		return "days to weeks"
	}
}

// AffectedNode is one node reached by the cascade, with the full path
// that reached it for explainability.
type AffectedNode struct {
	Node                *graph.Node `json:"node"`
	ImpactLevel         ImpactLevel `json:"impact_level"`
	ImpactStrength      float64     `json:"impact_strength"`
	PathLength          int         `json:"path_length"`
	DependencyChain     []string    `json:"dependency_chain"`
	RedundancyAvailable bool        `json:"redundancy_available"`
	EstimatedRecovery   string      `json:"estimated_recovery,omitempty"`
}

type queueEntry struct {
	id    string
	depth int
	chain []string
}

// propagate runs the bounded-depth breadth-first traversal from the
// source over outgoing edges. Each traversed edge contributes
//
//	impactStrength = edge.strength * disruptionLevel * (1 - edge.redundancy)
//
// and a node is recorded on first visit only: BFS guarantees the
// least-decayed path wins. The returned slice is in visit order, which
// is deterministic for a fixed graph.
func propagate(g *graph.Graph, sourceID string, disruptionLevel float64) []*AffectedNode {
	affected := make([]*AffectedNode, 0)
	visited := map[string]bool{sourceID: true}

	queue := []queueEntry{{id: sourceID, depth: 0, chain: []string{sourceID}}}
	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		if entry.depth >= maxDepth {
			continue
		}

		for _, e := range g.OutgoingEdges(entry.id) {
			if visited[e.To] {
				continue
			}
			impact := e.Strength * disruptionLevel * (1 - e.Redundancy)
			if impact < pruneThreshold {
				continue
			}
			visited[e.To] = true

			node, ok := g.Node(e.To)
			if !ok {
				continue // cannot happen: builder never dangles edges
			}

			chain := make([]string, len(entry.chain), len(entry.chain)+1)
			copy(chain, entry.chain)
			chain = append(chain, e.To)

			level := impactLevelFor(impact)
			affected = append(affected, &AffectedNode{
				Node:                node,
				ImpactLevel:         level,
				ImpactStrength:      impact,
				PathLength:          entry.depth + 1,
				DependencyChain:     chain,
				RedundancyAvailable: e.Redundancy > 0,
				EstimatedRecovery:   estimatedRecovery(level),
			})

			queue = append(queue, queueEntry{id: e.To, depth: entry.depth + 1, chain: chain})
		}
	}

	return affected
}
