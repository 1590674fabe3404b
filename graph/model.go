package graph

import (
	"encoding/json"
	"fmt"

	"infragraph/catalog"
)

// NodeType represents the category of a node.
type NodeType string

const (
	NodeTypeCable      NodeType = "cable"
	NodeTypePipeline   NodeType = "pipeline"
	NodeTypePort       NodeType = "port"
	NodeTypeChokepoint NodeType = "chokepoint"
	NodeTypeCountry    NodeType = "country"
)

// EdgeType represents the nature of the dependency.
type EdgeType string

const (
	EdgeTypeServes          EdgeType = "serves"           // asset -> country it supplies
	EdgeTypeLandsAt         EdgeType = "lands_at"         // cable -> country of a physical landing
	EdgeTypeTradeRoute      EdgeType = "trade_route"      // port -> distant country relying on its route
	EdgeTypeControlsAccess  EdgeType = "controls_access"  // chokepoint -> port behind it
	EdgeTypeTradeDependency EdgeType = "trade_dependency" // chokepoint -> dependent country
)

// Node represents one piece of global infrastructure or a country.
// Ids are globally unique and prefixed by type ("cable:marea",
// "country:US").
type Node struct {
	ID          string                 `json:"id"`
	Type        NodeType               `json:"type"`
	Name        string                 `json:"name"`
	Coordinates *catalog.Coordinate    `json:"coordinates,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// Edge is a weighted directed dependency. Strength is the fraction of
// the target's capacity riding on the source; Redundancy is the
// fraction alternative routes can absorb. Edges always point from an
// asset toward a country, or from a chokepoint toward a port/country,
// so the graph is acyclic by construction.
type Edge struct {
	From       string                 `json:"from"`
	To         string                 `json:"to"`
	Type       EdgeType               `json:"type"`
	Strength   float64                `json:"strength"`
	Redundancy float64                `json:"redundancy"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// Graph is the adjacency-indexed dependency graph. It is immutable
// once built; concurrent reads need no locking (the cascade service
// owns the build-once guard).
type Graph struct {
	Nodes    map[string]*Node   `json:"nodes"`
	Edges    []*Edge            `json:"edges"`
	Outgoing map[string][]*Edge `json:"-"`
	Incoming map[string][]*Edge `json:"-"`
}

// New initializes a new empty graph.
func New() *Graph {
	return &Graph{
		Nodes:    make(map[string]*Node),
		Edges:    make([]*Edge, 0),
		Outgoing: make(map[string][]*Edge),
		Incoming: make(map[string][]*Edge),
	}
}

// Id helpers keep the type prefixes in one place.

func CableID(id string) string       { return "cable:" + id }
func PipelineID(id string) string    { return "pipeline:" + id }
func PortID(id string) string        { return "port:" + id }
func ChokepointID(id string) string  { return "chokepoint:" + id }
func CountryID(alpha2 string) string { return "country:" + alpha2 }

// AddNode registers a node.
func (g *Graph) AddNode(n *Node) {
	g.Nodes[n.ID] = n
}

// AddEdge appends an edge and updates both adjacency indexes. Both
// endpoints must already exist; the builder guarantees this by creating
// country nodes on demand.
func (g *Graph) AddEdge(e *Edge) {
	g.Edges = append(g.Edges, e)
	g.Outgoing[e.From] = append(g.Outgoing[e.From], e)
	g.Incoming[e.To] = append(g.Incoming[e.To], e)
}

// Node retrieves a node by id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.Nodes[id]
	return n, ok
}

// OutgoingEdges returns the edges leaving the given node.
func (g *Graph) OutgoingEdges(id string) []*Edge {
	return g.Outgoing[id]
}

// IncomingEdges returns the edges pointing at the given node.
func (g *Graph) IncomingEdges(id string) []*Edge {
	return g.Incoming[id]
}

// Stats summarizes the graph for diagnostics. Nodes always equals the
// sum of the per-type counts.
type Stats struct {
	Nodes       int `json:"nodes"`
	Edges       int `json:"edges"`
	Cables      int `json:"cables"`
	Pipelines   int `json:"pipelines"`
	Ports       int `json:"ports"`
	Chokepoints int `json:"chokepoints"`
	Countries   int `json:"countries"`
}

// Stats counts nodes per type.
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.Nodes), Edges: len(g.Edges)}
	for _, n := range g.Nodes {
		switch n.Type {
		case NodeTypeCable:
			s.Cables++
		case NodeTypePipeline:
			s.Pipelines++
		case NodeTypePort:
			s.Ports++
		case NodeTypeChokepoint:
			s.Chokepoints++
		case NodeTypeCountry:
			s.Countries++
		}
	}
	return s
}

// ToJSON serializes nodes and edges for the dashboard stream.
func (g *Graph) ToJSON() (json.RawMessage, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("graph to json: %w", err)
	}
	return data, nil
}

// String returns a summary of the graph.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(Nodes: %d, Edges: %d)", len(g.Nodes), len(g.Edges))
}
