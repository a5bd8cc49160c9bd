package device

// ID identifies a target device's grid layout, SLR seam schedule, and
// boundary-capacity constants.
type ID string

// U250 is the reference device: a 4x8 slot grid with SLR seams at
// y in {2, 6, 10}.
const U250 ID = "u250"

// Descriptor holds everything routinggraph.Build needs to construct the
// static routing graph for one device: the grid extent, which horizontal
// seams are SLR crossings, and the three named boundary-capacity constants.
type Descriptor struct {
	// XCoords and YCoords are the even slot origins along each axis, e.g.
	// {0,2,4,6} and {0,2,...,14} for U250.
	XCoords, YCoords []int

	// SLRSeams holds the y-coordinates at which a horizontal boundary (the
	// boundary between the slot at y and the slot at y+2) crosses an SLR.
	SLRSeams map[int]bool

	// VerticalBoundaryCapacity is the bit capacity of a left/right
	// (horizontal-neighbour) boundary edge.
	VerticalBoundaryCapacity int
	// SLRCrossingBoundaryCapacity is the bit capacity of a vertical
	// (top/bottom-neighbour) boundary edge that crosses an SLR seam.
	SLRCrossingBoundaryCapacity int
	// NonSLRCrossingHorizontalCapacity is the bit capacity of a vertical
	// boundary edge that does not cross an SLR seam.
	NonSLRCrossingHorizontalCapacity int

	// BendLimit is the maximum number of bends pathenum permits per path.
	BendLimit int
}

// IsSLRSeam reports whether the horizontal boundary between the slot row at
// y and the row at y+2 crosses an SLR seam.
func (d Descriptor) IsSLRSeam(y int) bool {
	return d.SLRSeams[y]
}

// u250Descriptor is the reference device table: grid extent, SLR seam
// schedule, and boundary-capacity constants for the U250 part.
var u250Descriptor = Descriptor{
	XCoords:                          []int{0, 2, 4, 6},
	YCoords:                          []int{0, 2, 4, 6, 8, 10, 12, 14},
	SLRSeams:                         map[int]bool{2: true, 6: true, 10: true},
	VerticalBoundaryCapacity:         5280,
	SLRCrossingBoundaryCapacity:      5760,
	NonSLRCrossingHorizontalCapacity: 9440,
	BendLimit:                        2,
}

// registry maps a device ID to its Descriptor. Kept as an explicit, private
// table rather than a process-wide exported singleton: Lookup is the sole
// entry point, so new devices can be registered without reaching for
// package-level mutable state at import time.
var registry = map[ID]Descriptor{
	U250: u250Descriptor,
}

// Lookup returns the Descriptor for id, or ErrUnknownDevice if id is not
// registered.
func Lookup(id ID) (Descriptor, error) {
	d, ok := registry[id]
	if !ok {
		return Descriptor{}, ErrUnknownDevice
	}
	return d, nil
}
