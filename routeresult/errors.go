package routeresult

import "errors"

// ErrBridgeNotSelected indicates the solver's result did not contain an
// entry for one of the candidate bridges passed to Emit, or that the
// selected path has fewer than two slots: a sign of a mismatched
// candidates/selection pair rather than a legal solver outcome.
var ErrBridgeNotSelected = errors.New("routeresult: bridge has no selected path")
