// Package routeresult converts a solved ILP selection back into the
// caller-facing shape: per bridge, the ordered list of intermediate slots
// a signal must pass through between its declared source and destination.
package routeresult
