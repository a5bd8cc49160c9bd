package ilp

import (
	"github.com/lvlath-routing/slotroute/pathenum"
	"github.com/lvlath-routing/slotroute/routinggraph"
)

// PreflightCapacityCheck is an optional pre-solve check: for every routing
// edge, if a bridge's every candidate path crosses that edge, the bridge
// cannot avoid it, so its width is unconditionally forced through. If the
// sum of such forced widths already exceeds an edge's capacity, routing
// cannot possibly succeed and there is no point formulating or solving
// the LP.
func PreflightCapacityCheck(candidates map[string][]pathenum.Path, g *routinggraph.Graph) error {
	forced := make(map[routinggraph.EdgeID]int)

	for _, paths := range candidates {
		if len(paths) == 0 {
			continue
		}
		common := edgesCommonToAll(paths)
		for e := range common {
			forced[e] += paths[0].Width
		}
	}

	for e, required := range forced {
		capacity, _ := g.Edge(e)
		if required > capacity {
			return &CapacityExceededError{EdgeCapacity: capacity, MinRequired: required}
		}
	}
	return nil
}

// edgesCommonToAll returns the set of edges crossed by every path in paths.
func edgesCommonToAll(paths []pathenum.Path) map[routinggraph.EdgeID]bool {
	common := make(map[routinggraph.EdgeID]bool)
	for _, e := range paths[0].Edges {
		common[e] = true
	}
	for _, p := range paths[1:] {
		present := make(map[routinggraph.EdgeID]bool, len(p.Edges))
		for _, e := range p.Edges {
			present[e] = true
		}
		for e := range common {
			if !present[e] {
				delete(common, e)
			}
		}
	}
	return common
}
