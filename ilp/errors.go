package ilp

import (
	"errors"
	"fmt"
)

// ErrRoutingInfeasible indicates the solver reported a non-optimal status
// (infeasible, unbounded, or an internal solver error).
var ErrRoutingInfeasible = errors.New("ilp: routing infeasible")

// FractionalSolutionError indicates the LP optimum contained a variable
// outside the integrality tolerance: the continuous-relaxation assumption
// failed for this instance.
type FractionalSolutionError struct {
	Bridge string
	Value  float64
}

func (e *FractionalSolutionError) Error() string {
	return fmt.Sprintf("ilp: fractional solution for bridge %q: x=%g", e.Bridge, e.Value)
}

// CapacityExceededError indicates the sum of minimum widths crossing an
// edge already exceeds its capacity before routing even begins.
type CapacityExceededError struct {
	EdgeCapacity int
	MinRequired  int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("ilp: capacity exceeded by inputs: edge capacity %d, minimum required %d", e.EdgeCapacity, e.MinRequired)
}
