package routeresult

import (
	"fmt"
	"sort"

	"github.com/lvlath-routing/slotroute/device"
	"github.com/lvlath-routing/slotroute/ilp"
	"github.com/lvlath-routing/slotroute/pathenum"
)

// Emit converts a solved ILP result into per-bridge intermediate-slot
// lists: the selected path's Slots with its source and destination
// endpoints trimmed off. A direct, length-2 path yields an empty (never
// nil) slice. candidates is consulted only to confirm every bridge the
// caller asked about actually has a selection; it carries no other
// weight here since sel.Selected already names the winning path.
func Emit(candidates map[string][]pathenum.Path, sel ilp.Result) (map[string][]device.Slot, error) {
	out := make(map[string][]device.Slot, len(candidates))
	for name := range candidates {
		path, ok := sel.Selected[name]
		if !ok {
			return nil, fmt.Errorf("routeresult: bridge %q: %w", name, ErrBridgeNotSelected)
		}
		if path.Length() < 2 {
			return nil, fmt.Errorf("routeresult: bridge %q: %w", name, ErrBridgeNotSelected)
		}
		interior := path.Slots[1 : len(path.Slots)-1]
		slots := make([]device.Slot, len(interior))
		copy(slots, interior)
		out[name] = slots
	}
	return out, nil
}

// BridgeNames returns sel's bridge names in sorted order, for callers that
// want a deterministic iteration order over Emit's output.
func BridgeNames(sel map[string][]device.Slot) []string {
	names := make([]string, 0, len(sel))
	for name := range sel {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
