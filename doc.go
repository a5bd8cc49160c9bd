// Package slotroute is the inter-slot global routing core for a
// dataflow-accelerator compiler backend.
//
// Given a target device descriptor and a list of logical bridges (signal
// connections between slots), Route builds the device's capacity-annotated
// grid graph, enumerates bend- and length-bounded candidate paths per
// bridge, formulates and solves a linear program that picks exactly one
// path per bridge under per-edge capacity, and returns the intermediate
// slots each bridge must be routed through.
//
// Under the hood the work is organized under per-concern subpackages:
//
//	device/       device descriptors, slot-name codec, capacity constants
//	routinggraph/ the capacity-annotated grid graph (vertex/edge arenas)
//	pathenum/     bend- and length-bounded candidate path enumeration
//	bridge/       bridge-list to candidate-path catalogue
//	ilp/          LP formulation and solver driver (gonum simplex)
//	routeresult/  solved selection to caller-facing slot lists
//
// Route wires these stages together synchronously; nothing here spawns
// goroutines or holds state across calls.
package slotroute
