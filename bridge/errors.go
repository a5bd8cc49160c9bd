package bridge

import "errors"

// Sentinel errors for bridge cataloguing.
var (
	// ErrDuplicateBridgeName indicates two bridges share a name.
	ErrDuplicateBridgeName = errors.New("bridge: duplicate bridge name")
	// ErrUnknownLogicalVertex indicates a bridge endpoint could not be
	// projected to a slot via the supplied logical-vertex mapping.
	ErrUnknownLogicalVertex = errors.New("bridge: unknown logical vertex")
)
