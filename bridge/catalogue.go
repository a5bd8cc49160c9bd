package bridge

import (
	"fmt"

	"github.com/lvlath-routing/slotroute/device"
	"github.com/lvlath-routing/slotroute/pathenum"
	"github.com/lvlath-routing/slotroute/routinggraph"
)

// Catalogue drives the path enumerator once per bridge against a fixed
// routing graph and bend limit.
type Catalogue struct {
	Graph     *routinggraph.Graph
	BendLimit int

	// VertexToSlot optionally projects logical vertex identifiers to slot
	// names, for callers that supply logical graph entities instead of
	// slot names directly. When nil, Bridge.Src/Dst are treated as slot
	// names already.
	VertexToSlot map[string]string
}

// Candidates resolves each bridge's endpoint slot names and returns its
// candidate paths. Bridges are processed independently; the returned map
// has one entry per bridge name. Returns ErrDuplicateBridgeName if two
// bridges share a name, device.ErrMalformedSlotName / routinggraph.
// ErrUnknownSlot if an endpoint does not resolve, or pathenum.
// ErrNoCandidatePath if a bridge has no legal route.
func (c *Catalogue) Candidates(bridges []Bridge) (map[string][]pathenum.Path, error) {
	out := make(map[string][]pathenum.Path, len(bridges))
	for _, b := range bridges {
		if _, dup := out[b.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBridgeName, b.Name)
		}

		srcName, err := c.resolve(b.Src)
		if err != nil {
			return nil, fmt.Errorf("bridge %q: %w", b.Name, err)
		}
		dstName, err := c.resolve(b.Dst)
		if err != nil {
			return nil, fmt.Errorf("bridge %q: %w", b.Name, err)
		}

		src, err := device.ParseSlotName(srcName)
		if err != nil {
			return nil, fmt.Errorf("bridge %q: %w", b.Name, err)
		}
		dst, err := device.ParseSlotName(dstName)
		if err != nil {
			return nil, fmt.Errorf("bridge %q: %w", b.Name, err)
		}

		paths, err := pathenum.FindAllPaths(c.Graph, src, dst, b.Width, b.Name, c.BendLimit)
		if err != nil {
			return nil, fmt.Errorf("bridge %q: %w", b.Name, err)
		}
		out[b.Name] = paths
	}
	return out, nil
}

// resolve projects a logical vertex to a slot name via VertexToSlot, or
// returns name unchanged when no mapping was supplied.
func (c *Catalogue) resolve(name string) (string, error) {
	if c.VertexToSlot == nil {
		return name, nil
	}
	slotName, ok := c.VertexToSlot[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLogicalVertex, name)
	}
	return slotName, nil
}
