package slotroute

import (
	"context"

	"github.com/lvlath-routing/slotroute/bridge"
	"github.com/lvlath-routing/slotroute/device"
	"github.com/lvlath-routing/slotroute/ilp"
	"github.com/lvlath-routing/slotroute/routeresult"
	"github.com/lvlath-routing/slotroute/routinggraph"
)

// Route builds deviceID's routing graph, enumerates candidates for every
// bridge, solves the path-selection LP, and returns each bridge's
// intermediate slot list, keyed by bridge name.
//
// Route runs synchronously, stage after stage. ctx is consulted for
// cancellation between stages only; it is never used to fan work out
// concurrently.
func Route(ctx context.Context, deviceID device.ID, bridges []bridge.Bridge, opts ...Option) (map[string][]device.Slot, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := defaultRouteConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d, err := device.Lookup(deviceID)
	if err != nil {
		return nil, err
	}

	g, err := routinggraph.Build(d)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	catalogue := &bridge.Catalogue{
		Graph:        g,
		BendLimit:    d.BendLimit,
		VertexToSlot: cfg.vertexToSlot,
	}
	candidates, err := catalogue.Candidates(bridges)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.preflightCapacityCheck {
		if err := ilp.PreflightCapacityCheck(candidates, g); err != nil {
			return nil, err
		}
	}

	program, err := ilp.Formulate(candidates, g)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := ilp.Solve(program)
	if err != nil {
		return nil, err
	}

	return routeresult.Emit(candidates, result)
}
