package pathenum

import (
	"strings"

	"github.com/lvlath-routing/slotroute/device"
	"github.com/lvlath-routing/slotroute/routinggraph"
)

// Path is an ordered sequence of slots, from a bridge's source to its
// destination, together with the bridge metadata it was enumerated for.
// Path identity (see Key) is bridge_name + "_" + joined vertex names, so
// paths of distinct bridges that traverse the same slots are distinct
// objects.
type Path struct {
	Bridge string
	Width  int
	Slots  []device.Slot
	Edges  []routinggraph.EdgeID

	bendCount int
}

// Length returns the number of vertices in the path, source and
// destination included.
func (p Path) Length() int {
	return len(p.Slots)
}

// BendCount returns the number of direction changes along the path.
func (p Path) BendCount() int {
	return p.bendCount
}

// Key returns the path's identity string: bridge_name + "_" + the joined
// slot names.
func (p Path) Key() string {
	var b strings.Builder
	b.WriteString(p.Bridge)
	b.WriteByte('_')
	for i, s := range p.Slots {
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteString(s.Name())
	}
	return b.String()
}
