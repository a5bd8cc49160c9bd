// Package bridge catalogues the logical data connections ("bridges") that
// must be routed, resolves their endpoint slot names, and drives pathenum
// once per bridge to produce the candidate-path sets the ilp package
// selects from.
package bridge
