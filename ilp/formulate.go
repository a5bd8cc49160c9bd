package ilp

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/lvlath-routing/slotroute/pathenum"
	"github.com/lvlath-routing/slotroute/routinggraph"
)

// Formulate builds the path-selection LP from a bridge's candidate paths
// and the routing graph they were enumerated against.
//
// Variable layout (columns of A):
//
//	[0, P)            one x_p per candidate path, 0 <= x_p (<= 1 via row below)
//	[P, P+E)          one slack per edge-capacity row actually used
//	[P+E, P+E+P)      one slack per path upper-bound row (x_p + t_p = 1)
//
// Row layout (rows of A):
//
//	[0, B)            one-path-per-bridge equalities
//	[B, B+E)          edge-capacity equalities (inequality + slack)
//	[B+E, B+E+P)      path upper-bound equalities (x_p <= 1, via slack)
func Formulate(candidates map[string][]pathenum.Path, g *routinggraph.Graph) (*Program, error) {
	bridgeNames := make([]string, 0, len(candidates))
	for name := range candidates {
		bridgeNames = append(bridgeNames, name)
	}
	sort.Strings(bridgeNames)

	var paths []pathenum.Path
	bridgeRows := make(map[string][]int, len(bridgeNames))
	for _, name := range bridgeNames {
		cs := candidates[name]
		cols := make([]int, len(cs))
		for i, p := range cs {
			cols[i] = len(paths)
			paths = append(paths, p)
		}
		bridgeRows[name] = cols
	}
	numPaths := len(paths)

	// edgePaths[e] lists the column indices of every path that crosses
	// routing edge e.
	edgePaths := make(map[routinggraph.EdgeID][]int)
	for col, p := range paths {
		for _, e := range p.Edges {
			edgePaths[e] = append(edgePaths[e], col)
		}
	}
	edgeIDs := make([]routinggraph.EdgeID, 0, len(edgePaths))
	for e := range edgePaths {
		edgeIDs = append(edgeIDs, e)
	}
	sort.Slice(edgeIDs, func(i, j int) bool { return edgeIDs[i] < edgeIDs[j] })

	numEdgeRows := len(edgeIDs)
	numCols := numPaths + numEdgeRows + numPaths
	numRows := len(bridgeNames) + numEdgeRows + numPaths

	A := mat.NewDense(numRows, numCols, nil)
	b := make([]float64, numRows)
	c := make([]float64, numCols)

	row := 0

	// One-path-per-bridge: sum_{p in paths(b)} x_p = 1.
	for _, name := range bridgeNames {
		for _, col := range bridgeRows[name] {
			A.Set(row, col, 1)
		}
		b[row] = 1
		row++
	}

	// Edge capacity: sum_{p: e in edges(p)} width(p)*x_p + s_e = capacity(e).
	for i, e := range edgeIDs {
		capacity, _ := g.Edge(e)
		slackCol := numPaths + i
		for _, col := range edgePaths[e] {
			A.Set(row, col, A.At(row, col)+float64(paths[col].Width))
		}
		A.Set(row, slackCol, 1)
		b[row] = float64(capacity)
		row++
	}

	// Path upper bound: x_p + t_p = 1.
	for p := 0; p < numPaths; p++ {
		slackCol := numPaths + numEdgeRows + p
		A.Set(row, p, 1)
		A.Set(row, slackCol, 1)
		b[row] = 1
		row++
	}

	// Objective: minimise sum_p length(p) * width(p) * x_p; slacks are free.
	for i, p := range paths {
		c[i] = float64(p.Length() * p.Width)
	}

	return &Program{
		paths:      paths,
		c:          c,
		A:          A,
		b:          b,
		bridgeRows: bridgeRows,
	}, nil
}
