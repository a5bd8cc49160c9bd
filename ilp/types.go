package ilp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/lvlath-routing/slotroute/pathenum"
)

// Program is an assembled linear program ready for Solve: one continuous
// variable per candidate path plus the slack variables needed to express
// the capacity inequality constraints in gonum's required standard form
// (Ax = b, x >= 0).
type Program struct {
	// paths holds every candidate path across all bridges, in the
	// deterministic order that also indexes the first len(paths) columns
	// of A.
	paths []pathenum.Path

	// c is the objective coefficient vector (length = total variable count).
	c []float64
	// A is the constraint matrix (rows = bridges + edges + path bounds).
	A *mat.Dense
	// b is the constraint right-hand side.
	b []float64

	// bridgeRows maps a bridge name to the column indices of its
	// candidate paths, preserving Formulate's deterministic ordering.
	bridgeRows map[string][]int
}

// Result is the outcome of Solve: the selected path for every bridge and
// the raw variable vector for diagnostics.
type Result struct {
	Selected map[string]pathenum.Path
	RawX     []float64
}
