package ilp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/lvlath-routing/slotroute/pathenum"
)

// IntegralityTolerance is the maximum allowed deviation of a solver
// variable from its nearest integer.
const IntegralityTolerance = 1e-4

// Solve submits p to gonum's simplex solver and enforces three
// post-conditions: optimal status, integral variables, and exactly one
// selected path per bridge.
//
// Returns ErrRoutingInfeasible if the solver status is not optimal, or a
// *FractionalSolutionError if any variable falls outside
// IntegralityTolerance of its nearest integer.
func Solve(p *Program) (Result, error) {
	_, x, err := lp.Simplex(nil, p.c, p.A, p.b, 0)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRoutingInfeasible, err)
	}

	numPaths := len(p.paths)
	for i := 0; i < numPaths; i++ {
		if math.Abs(x[i]-math.Round(x[i])) >= IntegralityTolerance {
			return Result{}, &FractionalSolutionError{Bridge: p.paths[i].Bridge, Value: x[i]}
		}
	}

	selected := make(map[string]pathenum.Path, len(p.bridgeRows))
	for bridgeName, cols := range p.bridgeRows {
		found := false
		for _, col := range cols {
			if math.Round(x[col]) == 1 {
				selected[bridgeName] = p.paths[col]
				found = true
				break
			}
		}
		if !found {
			return Result{}, fmt.Errorf("%w: no path selected for bridge %q", ErrRoutingInfeasible, bridgeName)
		}
	}

	return Result{Selected: selected, RawX: x}, nil
}
