package routinggraph

import "errors"

// Sentinel errors for routing-graph construction and lookup.
var (
	// ErrUnknownSlot indicates a slot name not present in the built graph.
	ErrUnknownSlot = errors.New("routinggraph: unknown slot")
	// ErrNoSharedEdge indicates two vertices were asked for a shared edge but are not neighbours.
	ErrNoSharedEdge = errors.New("routinggraph: vertices are not neighbours")
)
