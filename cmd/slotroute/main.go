package main

import (
	"context"
	"flag"
	"log"
	"sort"

	"github.com/lvlath-routing/slotroute"
	"github.com/lvlath-routing/slotroute/device"
	"github.com/lvlath-routing/slotroute/internal/config"
	"github.com/lvlath-routing/slotroute/routinggraph"
)

func main() {
	path := flag.String("job", "", "path to a YAML routing job description")
	dumpAdjacency := flag.Bool("dump-adjacency", false, "print the target device's adjacency matrix and exit")
	flag.Parse()

	if *dumpAdjacency {
		dumpDeviceAdjacency()
		return
	}

	if *path == "" {
		log.Fatal("slotroute: -job is required")
	}

	job, err := config.Load(*path)
	if err != nil {
		log.Fatalf("slotroute: %v", err)
	}

	log.Printf("routing %d bridges against device %q", len(job.Bridges), job.Device)

	result, err := slotroute.Route(context.Background(), job.DeviceID(), job.BridgeList())
	if err != nil {
		log.Fatalf("slotroute: routing failed: %v", err)
	}

	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		slots := result[name]
		if len(slots) == 0 {
			log.Printf("%s: direct", name)
			continue
		}
		log.Printf("%s: %d intermediate slot(s)", name, len(slots))
		for _, s := range slots {
			log.Printf("  %s", s.Name())
		}
	}
}

// dumpDeviceAdjacency prints the reference device's adjacency matrix, for
// operators diagnosing an unexpected routing failure without wiring up a
// visualizer.
func dumpDeviceAdjacency() {
	d, err := device.Lookup(device.U250)
	if err != nil {
		log.Fatalf("slotroute: %v", err)
	}
	g, err := routinggraph.Build(d)
	if err != nil {
		log.Fatalf("slotroute: %v", err)
	}

	am := g.NewAdjacencyMatrix()
	for i, from := range am.Names {
		for j, to := range am.Names {
			if w := am.Data[i][j]; w != 0 {
				log.Printf("%s -> %s: capacity %d", from, to, w)
			}
		}
	}
}
