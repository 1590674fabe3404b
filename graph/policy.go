package graph

// Edge-synthesis policy. Every strength and redundancy below is a fixed
// constant, not a learned value; the tables are keyed configuration
// data kept apart from the traversal logic so they can be tested and
// extended independently.

const (
	// Cable landing points: losing a landing hurts, but cables
	// usually have more than one.
	landsAtStrength   = 0.3
	landsAtRedundancy = 0.5

	// Redundancy granted to a served country when the catalog flags
	// the relationship as redundant.
	redundantServeValue = 0.5

	// Pipelines: per-country transit share, moderate redundancy via
	// seaborne alternatives.
	pipelineStrength   = 0.2
	pipelineRedundancy = 0.3

	// Chokepoints gate every port within this radius.
	chokepointPortRadiusKm   = 500.0
	chokepointPortStrength   = 0.7
	chokepointPortRedundancy = 0.2
)

// portTypeWeights sets the base serve strength per port type. Energy
// terminals weigh more than container hubs: cargo reroutes, crude
// loading berths do not.
var portTypeWeights = map[string]float64{
	"oil":       0.9,
	"lng":       0.85,
	"container": 0.7,
	"mixed":     0.6,
	"bulk":      0.5,
	"naval":     0.4,
}

// portRankBoost rewards the busiest ports: rank 1 gets +0.285, rank 20
// and beyond get nothing.
func portRankBoost(rank int) float64 {
	boost := float64(20-rank) / 20.0
	if boost < 0 {
		boost = 0
	}
	return boost * 0.3
}

// portRedundancy: top-5 ports are harder to replace, hence lower
// redundancy.
func portRedundancy(rank int) float64 {
	if rank <= 5 {
		return 0.2
	}
	return 0.4
}

// TradeSpillover records a distant country that depends on a strategic
// port's route.
type TradeSpillover struct {
	Country  string
	Strength float64
	Reason   string
}

// tradeRoutes lists route spillovers for well-known strategic ports,
// keyed by catalog port id.
var tradeRoutes = map[string][]TradeSpillover{
	// Suez-adjacent
	"port_said": {
		{"DE", 0.3, "Asia-Europe container imports transit Suez"},
		{"NL", 0.3, "Rotterdam feeder traffic from Suez route"},
		{"IT", 0.25, "Mediterranean transshipment"},
	},
	"suez": {
		{"DE", 0.25, "Asia-Europe container imports transit Suez"},
		{"IN", 0.2, "Westbound exports to Europe"},
	},
	// Hormuz-adjacent
	"fujairah": {
		{"JP", 0.35, "crude loading east of Hormuz"},
		{"KR", 0.3, "crude loading east of Hormuz"},
		{"IN", 0.25, "Gulf crude imports"},
	},
	"jebel_ali": {
		{"IN", 0.3, "Gulf transshipment hub for South Asia"},
		{"PK", 0.25, "Gulf transshipment hub for South Asia"},
	},
	// Malacca-adjacent
	"singapore": {
		{"CN", 0.3, "eastbound energy and westbound exports transit Malacca"},
		{"JP", 0.25, "energy imports transit Malacca"},
		{"KR", 0.25, "energy imports transit Malacca"},
	},
	"port_klang": {
		{"CN", 0.2, "Malacca corridor feeder traffic"},
	},
	// Panama-adjacent
	"balboa": {
		{"US", 0.3, "US east coast traffic via the canal"},
		{"CL", 0.2, "Pacific South America exports"},
	},
	"colon": {
		{"US", 0.3, "US east coast traffic via the canal"},
		{"PE", 0.2, "Pacific South America exports"},
	},
	// Red Sea / Gulf of Aden
	"djibouti": {
		{"ET", 0.45, "landlocked Ethiopia's sole sea outlet"},
		{"EG", 0.2, "Red Sea corridor toward Suez"},
	},
	"aden": {
		{"EG", 0.2, "Red Sea corridor toward Suez"},
	},
}

// ChokeDependency records a country whose trade depends on a chokepoint
// staying open.
type ChokeDependency struct {
	Country    string
	Strength   float64
	Redundancy float64
	Reason     string
}

// chokepointDependencies is the per-chokepoint trade dependency table,
// keyed by catalog chokepoint id.
var chokepointDependencies = map[string][]ChokeDependency{
	"suez": {
		{"EG", 0.9, 0.1, "canal transit revenue and domestic supply"},
		{"NL", 0.65, 0.3, "Asia-Europe imports via Rotterdam"},
		{"DE", 0.6, 0.3, "Asia-Europe imports"},
		{"IT", 0.55, 0.3, "Mediterranean trade"},
		{"GB", 0.5, 0.35, "Asia-Europe imports"},
		{"FR", 0.5, 0.3, "Asia-Europe imports"},
		{"CN", 0.45, 0.4, "westbound exports, Cape reroute possible"},
		{"IN", 0.4, 0.4, "westbound exports, Cape reroute possible"},
	},
	"hormuz_strait": {
		{"JP", 0.8, 0.2, "Gulf crude covers most oil imports"},
		{"KR", 0.75, 0.2, "Gulf crude covers most oil imports"},
		{"IN", 0.65, 0.25, "Gulf crude imports"},
		{"CN", 0.6, 0.3, "Gulf crude imports, partial overland substitution"},
		{"SG", 0.5, 0.3, "refining feedstock"},
		{"US", 0.3, 0.6, "domestic production offsets Gulf supply"},
	},
	"malacca_strait": {
		{"SG", 0.9, 0.1, "entrepot economy sits on the strait"},
		{"CN", 0.8, 0.2, "energy imports and export shipping"},
		{"JP", 0.7, 0.25, "energy imports"},
		{"KR", 0.7, 0.25, "energy imports"},
		{"TW", 0.6, 0.3, "energy imports"},
	},
	"bab_el_mandeb": {
		{"DJ", 0.85, 0.1, "port economy at the strait"},
		{"YE", 0.8, 0.1, "imports through Aden and Hodeidah"},
		{"EG", 0.7, 0.2, "feeds the Suez transit corridor"},
		{"SA", 0.4, 0.4, "Red Sea terminals, east coast alternative"},
		{"IT", 0.4, 0.35, "Suez-route imports"},
		{"DE", 0.35, 0.4, "Suez-route imports"},
	},
	"panama": {
		{"PA", 0.9, 0.1, "canal transit revenue"},
		{"US", 0.65, 0.3, "east coast-Asia traffic"},
		{"CL", 0.5, 0.3, "Atlantic-bound exports"},
		{"EC", 0.5, 0.3, "Atlantic-bound exports"},
		{"PE", 0.45, 0.35, "Atlantic-bound exports"},
		{"JP", 0.3, 0.5, "US east coast trade"},
	},
	"gibraltar": {
		{"ES", 0.5, 0.4, "Mediterranean gateway traffic"},
		{"MA", 0.5, 0.3, "Tangier Med transshipment"},
		{"DZ", 0.4, 0.4, "energy exports to Atlantic markets"},
		{"IT", 0.35, 0.45, "Atlantic imports"},
	},
	"bosphorus": {
		{"UA", 0.75, 0.2, "sole deep-sea export route"},
		{"TR", 0.7, 0.2, "Istanbul port traffic and transit fees"},
		{"RU", 0.6, 0.3, "Black Sea oil and grain exports"},
		{"BG", 0.55, 0.3, "Black Sea trade"},
		{"RO", 0.5, 0.3, "Black Sea trade"},
		{"KZ", 0.5, 0.35, "CPC crude exported via the Black Sea"},
	},
	"dardanelles": {
		{"UA", 0.7, 0.2, "paired with the Bosphorus on the only exit"},
		{"TR", 0.65, 0.2, "Marmara transit"},
		{"RU", 0.55, 0.3, "Black Sea exports"},
		{"BG", 0.5, 0.3, "Black Sea trade"},
	},
	"taiwan_strait": {
		{"TW", 0.9, 0.1, "nearly all trade moves through adjacent waters"},
		{"JP", 0.55, 0.3, "north-south shipping lane"},
		{"KR", 0.55, 0.3, "north-south shipping lane"},
		{"CN", 0.5, 0.4, "coastal shipping between north and south"},
		{"US", 0.35, 0.5, "trans-Pacific supply chains"},
	},
}
