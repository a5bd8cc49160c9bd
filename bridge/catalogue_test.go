package bridge

import (
	"testing"

	"github.com/lvlath-routing/slotroute/device"
	"github.com/lvlath-routing/slotroute/routinggraph"
)

func newCatalogue(t *testing.T) *Catalogue {
	t.Helper()
	d, err := device.Lookup(device.U250)
	if err != nil {
		t.Fatalf("device.Lookup error: %v", err)
	}
	g, err := routinggraph.Build(d)
	if err != nil {
		t.Fatalf("routinggraph.Build error: %v", err)
	}
	return &Catalogue{Graph: g, BendLimit: d.BendLimit}
}

func TestCandidatesOnePerBridge(t *testing.T) {
	c := newCatalogue(t)
	bridges := []Bridge{
		{Name: "b0", Src: "CR_X0Y0_To_CR_X1Y1", Dst: "CR_X2Y0_To_CR_X3Y1", Width: 32},
		{Name: "b1", Src: "CR_X0Y0_To_CR_X1Y1", Dst: "CR_X4Y4_To_CR_X5Y5", Width: 10},
	}
	candidates, err := c.Candidates(bridges)
	if err != nil {
		t.Fatalf("Candidates error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d bridge entries; want 2", len(candidates))
	}
	for _, b := range bridges {
		if len(candidates[b.Name]) == 0 {
			t.Errorf("bridge %q has no candidates", b.Name)
		}
	}
}

func TestCandidatesDuplicateName(t *testing.T) {
	c := newCatalogue(t)
	bridges := []Bridge{
		{Name: "b0", Src: "CR_X0Y0_To_CR_X1Y1", Dst: "CR_X2Y0_To_CR_X3Y1", Width: 32},
		{Name: "b0", Src: "CR_X0Y0_To_CR_X1Y1", Dst: "CR_X2Y0_To_CR_X3Y1", Width: 32},
	}
	if _, err := c.Candidates(bridges); err == nil {
		t.Fatal("expected ErrDuplicateBridgeName")
	}
}

func TestCandidatesUnknownSlot(t *testing.T) {
	c := newCatalogue(t)
	bridges := []Bridge{
		{Name: "b0", Src: "CR_X0Y0_To_CR_X1Y1", Dst: "CR_X100Y100_To_CR_X101Y101", Width: 32},
	}
	if _, err := c.Candidates(bridges); err == nil {
		t.Fatal("expected an error for unresolvable destination slot")
	}
}

func TestCandidatesLogicalVertexMapping(t *testing.T) {
	c := newCatalogue(t)
	c.VertexToSlot = map[string]string{
		"v_src": "CR_X0Y0_To_CR_X1Y1",
		"v_dst": "CR_X2Y0_To_CR_X3Y1",
	}
	bridges := []Bridge{{Name: "b0", Src: "v_src", Dst: "v_dst", Width: 32}}
	candidates, err := c.Candidates(bridges)
	if err != nil {
		t.Fatalf("Candidates error: %v", err)
	}
	if len(candidates["b0"]) == 0 {
		t.Fatal("expected candidates via logical vertex mapping")
	}
}

func TestCandidatesUnknownLogicalVertex(t *testing.T) {
	c := newCatalogue(t)
	c.VertexToSlot = map[string]string{"v_src": "CR_X0Y0_To_CR_X1Y1"}
	bridges := []Bridge{{Name: "b0", Src: "v_src", Dst: "v_missing", Width: 32}}
	if _, err := c.Candidates(bridges); err == nil {
		t.Fatal("expected ErrUnknownLogicalVertex")
	}
}
