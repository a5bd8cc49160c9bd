package device

import "testing"

func TestSlotNameRoundTrip(t *testing.T) {
	cases := []Slot{{0, 0}, {2, 2}, {4, 4}, {6, 14}}
	for _, s := range cases {
		name := s.Name()
		got, err := ParseSlotName(name)
		if err != nil {
			t.Fatalf("ParseSlotName(%q) error: %v", name, err)
		}
		if got != s {
			t.Errorf("ParseSlotName(%q) = %+v; want %+v", name, got, s)
		}
	}
}

func TestParseSlotNameErrors(t *testing.T) {
	cases := []string{
		"",
		"CR_X0Y0_To_CR_X2Y1",
		"CR_X0Y0_To_CR_X1Y2",
		"garbage",
		"CR_X0Y0",
	}
	for _, name := range cases {
		if _, err := ParseSlotName(name); err == nil {
			t.Errorf("ParseSlotName(%q) = nil error; want ErrMalformedSlotName", name)
		}
	}
}

func TestHammingDistance(t *testing.T) {
	src := Slot{X: 0, Y: 0}
	dst := Slot{X: 4, Y: 4}
	if got := src.HammingDistance(dst); got != 4 {
		t.Errorf("HammingDistance(%v, %v) = %d; want 4", src, dst, got)
	}
	if got := src.HammingDistance(src); got != 0 {
		t.Errorf("HammingDistance(%v, %v) = %d; want 0", src, src, got)
	}
}

func TestLookupU250(t *testing.T) {
	d, err := Lookup(U250)
	if err != nil {
		t.Fatalf("Lookup(U250) error: %v", err)
	}
	if d.VerticalBoundaryCapacity != 5280 {
		t.Errorf("VerticalBoundaryCapacity = %d; want 5280", d.VerticalBoundaryCapacity)
	}
	if d.BendLimit != 2 {
		t.Errorf("BendLimit = %d; want 2", d.BendLimit)
	}
	if !d.IsSLRSeam(2) || d.IsSLRSeam(4) {
		t.Errorf("IsSLRSeam classification wrong: seam(2)=%v seam(4)=%v", d.IsSLRSeam(2), d.IsSLRSeam(4))
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nonexistent"); err != ErrUnknownDevice {
		t.Errorf("Lookup(nonexistent) error = %v; want ErrUnknownDevice", err)
	}
}
