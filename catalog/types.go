package catalog

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
}

// LandingPoint is a physical shore landing of a submarine cable.
type LandingPoint struct {
	Country string `yaml:"country" json:"country"`
}

// ServedCountry declares what fraction of a country's international
// bandwidth one cable carries, and whether alternative systems can absorb it.
type ServedCountry struct {
	Country       string  `yaml:"country" json:"country"`
	CapacityShare float64 `yaml:"capacity_share" json:"capacity_share"`
	IsRedundant   bool    `yaml:"is_redundant" json:"is_redundant"`
}

// Cable describes a submarine telecommunications cable system.
type Cable struct {
	ID              string          `yaml:"id" json:"id"`
	Name            string          `yaml:"name" json:"name"`
	Points          []Coordinate    `yaml:"points" json:"points"`
	CapacityTbps    float64         `yaml:"capacity_tbps" json:"capacity_tbps"`
	RFSYear         int             `yaml:"rfs_year" json:"rfs_year"`
	Owners          []string        `yaml:"owners" json:"owners"`
	LandingPoints   []LandingPoint  `yaml:"landing_points" json:"landing_points"`
	CountriesServed []ServedCountry `yaml:"countries_served" json:"countries_served"`
}

// Pipeline describes an oil or gas transmission pipeline.
type Pipeline struct {
	ID        string       `yaml:"id" json:"id"`
	Name      string       `yaml:"name" json:"name"`
	Points    []Coordinate `yaml:"points" json:"points"`
	Type      string       `yaml:"type" json:"type"`     // oil, gas
	Status    string       `yaml:"status" json:"status"` // operational, suspended
	Capacity  string       `yaml:"capacity" json:"capacity"`
	Operator  string       `yaml:"operator" json:"operator"`
	Countries []string     `yaml:"countries" json:"countries"`
}

// Port describes a maritime port. Rank is the global traffic rank for
// its port type (1 = busiest).
type Port struct {
	ID      string  `yaml:"id" json:"id"`
	Name    string  `yaml:"name" json:"name"`
	Lat     float64 `yaml:"lat" json:"lat"`
	Lon     float64 `yaml:"lon" json:"lon"`
	Country string  `yaml:"country" json:"country"`
	Type    string  `yaml:"type" json:"type"` // container, oil, lng, bulk, mixed, naval
	Rank    int     `yaml:"rank" json:"rank"`
}

// Chokepoint describes a narrow maritime passage whose disruption
// affects multiple dependent trade routes.
type Chokepoint struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Lat         float64 `yaml:"lat" json:"lat"`
	Lon         float64 `yaml:"lon" json:"lon"`
	Description string  `yaml:"description" json:"description"`
}

// Catalog aggregates the immutable reference data the dependency graph
// is synthesized from. It is loaded once at startup and never mutated
// afterwards (rank enrichment happens before the first graph build).
type Catalog struct {
	Cables      []Cable      `yaml:"cables" json:"cables"`
	Pipelines   []Pipeline   `yaml:"pipelines" json:"pipelines"`
	Ports       []Port       `yaml:"ports" json:"ports"`
	Chokepoints []Chokepoint `yaml:"chokepoints" json:"chokepoints"`
}

// CableByID returns the cable with the given raw id (without the
// "cable:" node prefix).
func (c *Catalog) CableByID(id string) (*Cable, bool) {
	for i := range c.Cables {
		if c.Cables[i].ID == id {
			return &c.Cables[i], true
		}
	}
	return nil, false
}

// ApplyPortRanks overwrites the rank of any port whose name matches a
// scraped entry. Unmatched entries are ignored.
func (c *Catalog) ApplyPortRanks(ranks map[string]int) int {
	updated := 0
	for i := range c.Ports {
		if rank, ok := ranks[normalizePortName(c.Ports[i].Name)]; ok {
			if c.Ports[i].Rank != rank {
				c.Ports[i].Rank = rank
				updated++
			}
		}
	}
	return updated
}
