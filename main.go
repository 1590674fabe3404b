package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"infragraph/cascade"
	"infragraph/catalog"
	"infragraph/config"
	"infragraph/logger"
	"infragraph/scraper"
	"infragraph/server"
	"infragraph/tui"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(config.Global.Logging.Level, config.Global.Logging.EnableColors)

	tuiApp := tui.New()

	// Start TUI in background early so it can receive logs
	go func() {
		if err := tuiApp.Start(); err != nil {
			fmt.Printf("TUI Error: %v\n", err)
			os.Exit(1)
		}
	}()
	time.Sleep(100 * time.Millisecond)

	logger.SetOutput(tuiApp.NewWriter())
	logger.SetTUIMode(true)

	logger.Info(logger.StatusInit, "%s v%s", config.Global.App.Name, config.Global.App.Version)
	logger.Info(logger.StatusInit, "Infrastructure Dependency Cascade Engine - Disruption Impact Analysis")

	// 1. Reference catalogs (static per process lifetime)
	cat, err := catalog.Load(config.Global.Catalog.Dir)
	if err != nil {
		logger.Error(logger.StatusErr, "Error loading catalogs: %v", err)
		tuiApp.Stop()
		os.Exit(1)
	}

	// 1b. Optional live rank enrichment, before the first graph build
	if config.Global.Catalog.EnrichRanks {
		ranks, err := scraper.NewPortRankScraper().FetchRanks(30)
		if err != nil {
			logger.Warn(logger.StatusScrape, "Rank enrichment failed (%v), keeping catalog ranks", err)
		} else if updated := cat.ApplyPortRanks(ranks); updated > 0 {
			logger.Success("Refreshed traffic ranks for %d ports", updated)
		}
	}

	// 2. Cascade engine over the catalogs
	svc := cascade.NewService(cat)
	stats := svc.Stats() // triggers the first build
	logger.Success("Graph ready: %d nodes, %d edges", stats.Nodes, stats.Edges)

	// 3. Websocket hub + HTTP API
	hub := server.NewHub()
	hub.SetService(svc)
	go hub.Run()
	server.StartServer(hub, config.Global.Server.Port)

	// Keep the TUI stats pane in sync
	go func() {
		for range time.Tick(2 * time.Second) {
			tuiApp.UpdateStats(svc.Stats())
		}
	}()

	// Process commands from TUI (blocks until TUI exits)
	for input := range tuiApp.GetCommandChannel() {
		handleCommand(input, svc, hub, tuiApp)
	}
}

func handleCommand(input string, svc *cascade.Service, hub *server.Hub, tuiApp *tui.TUI) {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "cascade":
		if len(parts) < 2 {
			logger.Warn(logger.StatusWarn, "Usage: cascade <nodeID> [level] (e.g., cascade cable:marea 0.8)")
			return
		}
		level := config.Global.Cascade.DefaultDisruption
		if len(parts) >= 3 {
			parsed, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				logger.Warn(logger.StatusWarn, "Invalid disruption level %q", parts[2])
				return
			}
			level = parsed
		}

		result := svc.Calculate(parts[1], level)
		if result == nil {
			logger.Warn(logger.StatusWarn, "No node with id %q. Ids are prefixed: cable:, pipeline:, port:, chokepoint:, country:", parts[1])
			return
		}
		printCascade(result)
		hub.Broadcast("cascade_result", result)

	case "stats":
		printStats(svc)

	case "rebuild":
		svc.Invalidate()
		stats := svc.Stats()
		logger.Success("Graph rebuilt: %d nodes, %d edges", stats.Nodes, stats.Edges)

	case "export":
		file := "infragraph.dot"
		if len(parts) >= 2 {
			file = parts[1]
		}
		dot := svc.GetOrBuild().ToDOT()
		if err := os.WriteFile(file, []byte(dot), 0644); err != nil {
			logger.Error(logger.StatusErr, "Export failed: %v", err)
			return
		}
		logger.Info(logger.StatusSave, "Graph exported to %s", file)

	case "help":
		logger.Plain("")
		logger.Section("Commands")
		logger.Plain("  cascade <id> [level]  - disruption impact for a node (level in (0,1], default %.1f)", config.Global.Cascade.DefaultDisruption)
		logger.Plain("  stats                 - graph diagnostic counts")
		logger.Plain("  rebuild               - invalidate the graph cache and rebuild")
		logger.Plain("  export [file.dot]     - write the graph in Graphviz DOT format")
		logger.Plain("  exit                  - quit")

	case "exit", "quit":
		logger.Info(logger.StatusInit, "Shutting down...")
		tuiApp.Stop()
		os.Exit(0)

	default:
		logger.Warn(logger.StatusWarn, "Unknown command %q (try 'help')", parts[0])
	}
}

func printStats(svc *cascade.Service) {
	s := svc.Stats()
	logger.Plain("")
	logger.Section("Graph Statistics")
	logger.Plain("  Nodes:       %d", s.Nodes)
	logger.Plain("  Edges:       %d", s.Edges)
	logger.Plain("  Cables:      %d", s.Cables)
	logger.Plain("  Pipelines:   %d", s.Pipelines)
	logger.Plain("  Ports:       %d", s.Ports)
	logger.Plain("  Chokepoints: %d", s.Chokepoints)
	logger.Plain("  Countries:   %d", s.Countries)
}

func printCascade(r *cascade.Result) {
	logger.Plain("")
	logger.Section(fmt.Sprintf("Cascade: %s (level %.2f)", r.Source.Name, r.DisruptionLevel))

	logger.Plain("  Affected countries (%d):", len(r.CountriesAffected))
	for _, c := range r.CountriesAffected {
		logger.Plain("    [%-8s] %-20s capacity %.2f  via %s",
			c.ImpactLevel, c.Country.Name, c.AffectedCapacity, strings.Join(c.DependencyChain, " -> "))
	}

	if len(r.Redundancies) > 0 {
		logger.Plain("")
		logger.Plain("  Alternative routes:")
		for _, alt := range r.Redundancies {
			logger.Plain("    %-20s avg capacity share %.2f", alt.Name, alt.CapacityShare)
		}
	}

	logger.Plain("")
	logger.Plain("  Blast radius: %d nodes within 3 hops", len(r.AffectedNodes))
}
