// Package pathenum performs breadth-first enumeration of candidate routing
// paths between a source and destination slot, subject to a length bound
// (at most Hamming distance + 4 vertices, source and destination included) and a bend
// bound (at most two direction changes).
//
// The length bound is computed once, at the root of the enumeration, and
// held constant for every expansion.
package pathenum
