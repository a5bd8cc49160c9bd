// Package ilp formulates and solves the path-selection linear program:
// one continuous variable per candidate path, one-path-per-bridge equality
// constraints, per-edge capacity constraints, and an area-minimising
// objective. It then drives a continuous LP solver and enforces
// integrality of the solution as a hard post-condition rather than
// branching.
//
// The LP is solved via gonum's simplex implementation
// (gonum.org/v1/gonum/optimize/convex/lp), which expects standard form
// (Ax = b, x >= 0); inequality constraints (edge capacity, the x_p <= 1
// variable bound) are converted to equalities by introducing one slack
// variable per row.
package ilp
