// Package routinggraph builds the static, capacity-annotated grid graph
// that candidate paths are enumerated over. Vertices are chip slots lifted
// onto the routing graph; edges are the three boundary classes (vertical,
// SLR-crossing horizontal, non-SLR-crossing horizontal), each carrying an
// integer bit capacity.
//
// Vertices and edges live in owning arenas and are referenced by stable
// VertexID/EdgeID indices rather than pointers, so Graph is trivially safe
// to share by immutable reference across a routing invocation.
package routinggraph
