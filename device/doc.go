// Package device describes the target chip's slot grid: its extent, the
// horizontal seams that cross a super-logic-region (SLR), and the named
// boundary-capacity constants that routinggraph uses to annotate edges.
//
// A Descriptor is looked up by ID via Lookup; there is no package-level
// singleton, so two callers may route against different devices (or
// against the same device concurrently) without interference.
package device
