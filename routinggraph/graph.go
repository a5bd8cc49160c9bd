package routinggraph

import (
	"sort"

	"github.com/lvlath-routing/slotroute/device"
)

// Build constructs the static routing graph for d: one vertex per slot on
// the grid, and edges in exactly three capacity classes.
//
// Horizontal boundaries (vertical-neighbour pairs) are classified exactly
// once per boundary: SLR-crossing XOR non-SLR-crossing, never both. A
// naive pair of overlapping loops would add the same boundary twice for
// some y; the seam check here happens before, and instead of, the
// non-seam fallthrough.
//
// Complexity: O(|XCoords| * |YCoords|) vertices and edges.
func Build(d device.Descriptor) (*Graph, error) {
	xs := sortedCopy(d.XCoords)
	ys := sortedCopy(d.YCoords)

	g := &Graph{
		bySlot: make(map[device.Slot]VertexID, len(xs)*len(ys)),
	}

	for _, x := range xs {
		for _, y := range ys {
			s := device.Slot{X: x, Y: y}
			id := VertexID(len(g.vertices))
			g.vertices = append(g.vertices, vertex{slot: s})
			g.bySlot[s] = id
		}
	}

	// Vertical boundaries: horizontal neighbours, one per consecutive x pair
	// at every y.
	for i := 0; i+1 < len(xs); i++ {
		for _, y := range ys {
			left := device.Slot{X: xs[i], Y: y}
			right := device.Slot{X: xs[i+1], Y: y}
			g.addEdge(g.bySlot[left], g.bySlot[right], d.VerticalBoundaryCapacity, VerticalBoundary)
		}
	}

	// Horizontal boundaries: vertical neighbours, one per consecutive y pair
	// at every x, classified exactly once by SLR-seam membership.
	for _, x := range xs {
		for j := 0; j+1 < len(ys); j++ {
			lower := device.Slot{X: x, Y: ys[j]}
			upper := device.Slot{X: x, Y: ys[j+1]}
			if d.IsSLRSeam(ys[j]) {
				g.addEdge(g.bySlot[lower], g.bySlot[upper], d.SLRCrossingBoundaryCapacity, SLRCrossingBoundary)
			} else {
				g.addEdge(g.bySlot[lower], g.bySlot[upper], d.NonSLRCrossingHorizontalCapacity, NonSLRCrossingBoundary)
			}
		}
	}

	// Neighbour sets were appended in construction order; sort them so
	// enumeration order is deterministic regardless of how Build iterated.
	for i := range g.vertices {
		sort.Slice(g.vertices[i].neighbors, func(a, b int) bool {
			return g.vertices[i].neighbors[a] < g.vertices[i].neighbors[b]
		})
	}

	return g, nil
}

// addEdge canonicalises u < v, appends the edge to the arena, and
// registers it symmetrically on both endpoints' incidence and neighbour
// lists.
func (g *Graph) addEdge(u, v VertexID, capacity int, class EdgeClass) EdgeID {
	if u > v {
		u, v = v, u
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge{A: u, B: v, Capacity: capacity, Class: class})
	g.vertices[u].incident = append(g.vertices[u].incident, id)
	g.vertices[v].incident = append(g.vertices[v].incident, id)
	g.vertices[u].neighbors = append(g.vertices[u].neighbors, v)
	g.vertices[v].neighbors = append(g.vertices[v].neighbors, u)
	return id
}

func sortedCopy(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	sort.Ints(out)
	return out
}
