package slotroute

import (
	"fmt"

	"github.com/lvlath-routing/slotroute/bridge"
	"github.com/lvlath-routing/slotroute/device"
	"github.com/lvlath-routing/slotroute/ilp"
	"github.com/lvlath-routing/slotroute/pathenum"
	"github.com/lvlath-routing/slotroute/routinggraph"
)

// Sentinel errors Route can return, re-exported so callers can
// errors.Is against them without importing the subpackages. Route can
// also return errors not listed here (a malformed slot name, an unknown
// logical vertex, a context error).
var (
	// ErrUnknownDevice is returned when deviceID has no registered descriptor.
	ErrUnknownDevice = device.ErrUnknownDevice

	// ErrUnknownSlot is returned when a bridge endpoint does not name a
	// slot present on the target device's grid.
	ErrUnknownSlot = routinggraph.ErrUnknownSlot

	// ErrNoCandidatePath is returned when a bridge has no legal path under
	// the device's length and bend bounds.
	ErrNoCandidatePath = pathenum.ErrNoCandidatePath

	// ErrRoutingInfeasible is returned when the solver cannot find an
	// optimal, feasible assignment of one path per bridge.
	ErrRoutingInfeasible = ilp.ErrRoutingInfeasible
)

// FractionalSolutionError reports that the LP relaxation's optimum was not
// integral for some path variable; Route never rounds it away.
type FractionalSolutionError = ilp.FractionalSolutionError

// CapacityExceededByInputs reports that the preflight check found an edge
// whose summed forced widths (from bridges that cannot avoid it) already
// exceed its capacity, before the solver ever ran.
type CapacityExceededByInputs = ilp.CapacityExceededError

// wrapBridge annotates err with the bridge name that triggered it, unless
// err is already nil.
func wrapBridge(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("slotroute: bridge %q: %w", name, err)
}

// ErrDuplicateBridgeName re-exports bridge.ErrDuplicateBridgeName so callers
// never need to import the bridge package just to compare errors.
var ErrDuplicateBridgeName = bridge.ErrDuplicateBridgeName
