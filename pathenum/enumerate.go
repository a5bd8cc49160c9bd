package pathenum

import (
	"github.com/lvlath-routing/slotroute/device"
	"github.com/lvlath-routing/slotroute/routinggraph"
)

// partial is a non-empty prefix of a candidate path, rooted at the
// enumeration's source vertex.
type partial struct {
	vertices  []routinggraph.VertexID
	bendCount int
}

// tail returns the vertex the prefix currently ends at.
func (p partial) tail() routinggraph.VertexID {
	return p.vertices[len(p.vertices)-1]
}

// prev returns the vertex before tail. A one-vertex prefix reports its own
// tail as prev, so the first real hop contributes no bend.
func (p partial) prev() routinggraph.VertexID {
	if len(p.vertices) == 1 {
		return p.vertices[0]
	}
	return p.vertices[len(p.vertices)-2]
}

// FindAllPaths performs breadth-first enumeration of every simple,
// no-immediate-backtrack path from src to dst whose length does not exceed
// hamming_distance(src, dst) + 4 vertices and whose running bend count
// never exceeds bendLimit.
//
// lengthLimit is computed once from the initial Hamming distance and held
// constant for every expansion; it is not recomputed per child.
//
// Returns ErrNoCandidatePath if the resulting set is empty.
func FindAllPaths(g *routinggraph.Graph, src, dst device.Slot, width int, bridgeName string, bendLimit int) ([]Path, error) {
	srcID, err := g.VertexBySlot(src)
	if err != nil {
		return nil, err
	}
	dstID, err := g.VertexBySlot(dst)
	if err != nil {
		return nil, err
	}

	lengthLimit := src.HammingDistance(dst) + 4

	queue := []partial{{vertices: []routinggraph.VertexID{srcID}}}
	var results []Path

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr.tail() == dstID {
			p, err := finalize(g, curr, width, bridgeName)
			if err != nil {
				return nil, err
			}
			results = append(results, p)
			continue
		}

		if len(curr.vertices) >= lengthLimit {
			continue
		}

		prevID := curr.prev()
		currID := curr.tail()
		for _, next := range g.Neighbours(currID) {
			if next == prevID {
				continue
			}
			bend := curr.bendCount
			if isBend(g, prevID, currID, next) {
				bend++
			}
			if bend > bendLimit {
				continue
			}
			child := partial{
				vertices:  append(append([]routinggraph.VertexID{}, curr.vertices...), next),
				bendCount: bend,
			}
			queue = append(queue, child)
		}
	}

	if len(results) == 0 {
		return nil, ErrNoCandidatePath
	}

	return dedup(results), nil
}

// isBend reports whether prev, curr, next are neither vertically nor
// horizontally collinear.
func isBend(g *routinggraph.Graph, prev, curr, next routinggraph.VertexID) bool {
	ps, cs, ns := g.Vertex(prev), g.Vertex(curr), g.Vertex(next)
	if ps.X == cs.X && ns.X == cs.X {
		return false
	}
	if ps.Y == cs.Y && ns.Y == cs.Y {
		return false
	}
	return true
}

// finalize resolves each consecutive vertex pair of a completed partial
// path to its unique shared routing edge and produces the Path.
func finalize(g *routinggraph.Graph, p partial, width int, bridgeName string) (Path, error) {
	slots := make([]device.Slot, len(p.vertices))
	for i, v := range p.vertices {
		slots[i] = g.Vertex(v)
	}
	edges := make([]routinggraph.EdgeID, 0, len(p.vertices)-1)
	for i := 0; i+1 < len(p.vertices); i++ {
		e, err := g.EdgeBetween(p.vertices[i], p.vertices[i+1])
		if err != nil {
			return Path{}, err
		}
		edges = append(edges, e)
	}
	return Path{
		Bridge:    bridgeName,
		Width:     width,
		Slots:     slots,
		Edges:     edges,
		bendCount: p.bendCount,
	}, nil
}

// dedup removes duplicate paths by Key, preserving first-seen order.
func dedup(paths []Path) []Path {
	seen := make(map[string]bool, len(paths))
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		k := p.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}
