package device

import (
	"fmt"
	"regexp"
	"strconv"
)

// slotNamePattern matches "CR_X{x}Y{y}_To_CR_X{x+1}Y{y+1}" and captures x, y,
// the upper-right x, and the upper-right y so ParseSlotName can verify the
// name is internally consistent (upper-right must be exactly +1 in each axis).
var slotNamePattern = regexp.MustCompile(`^CR_X(\d+)Y(\d+)_To_CR_X(\d+)Y(\d+)$`)

// Slot is a rectangular region of the chip identified by its lower-left
// origin on the coordinate grid. The grid step is 2, so every slot spans
// (X, Y) to (X+1, Y+1).
type Slot struct {
	X, Y int
}

// Name formats the canonical slot-name token used as the sole interchange
// identity across component boundaries (CR_X{x}Y{y}_To_CR_X{x+1}Y{y+1}).
func (s Slot) Name() string {
	return fmt.Sprintf("CR_X%dY%d_To_CR_X%dY%d", s.X, s.Y, s.X+1, s.Y+1)
}

// ParseSlotName extracts (X, Y) from a canonical slot name. Returns
// ErrMalformedSlotName if name does not match the grammar or its
// upper-right corner is not exactly one past the lower-left origin.
func ParseSlotName(name string) (Slot, error) {
	m := slotNamePattern.FindStringSubmatch(name)
	if m == nil {
		return Slot{}, fmt.Errorf("%w: %q", ErrMalformedSlotName, name)
	}
	x, err1 := strconv.Atoi(m[1])
	y, err2 := strconv.Atoi(m[2])
	x2, err3 := strconv.Atoi(m[3])
	y2, err4 := strconv.Atoi(m[4])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return Slot{}, fmt.Errorf("%w: %q", ErrMalformedSlotName, name)
	}
	if x2 != x+1 || y2 != y+1 {
		return Slot{}, fmt.Errorf("%w: %q (non-adjacent corners)", ErrMalformedSlotName, name)
	}
	return Slot{X: x, Y: y}, nil
}

// HammingDistance returns the half-coordinate Manhattan distance between two
// slots. The grid step is 2, so raw coordinate deltas are divided by 2
// before summing; this is the distance unit pathenum uses for its length
// bound.
func (s Slot) HammingDistance(o Slot) int {
	dx := s.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := s.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx/2 + dy/2
}
