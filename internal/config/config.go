package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lvlath-routing/slotroute/bridge"
	"github.com/lvlath-routing/slotroute/device"
)

// BridgeSpec is the YAML-facing shape of one bridge entry. It mirrors
// bridge.Bridge field-for-field; kept distinct so the wire format can
// evolve (e.g. add tags later) without touching the routing core's types.
type BridgeSpec struct {
	Name  string `yaml:"name"`
	Src   string `yaml:"src"`
	Dst   string `yaml:"dst"`
	Width int    `yaml:"width"`
}

// Job is a complete routing job description: which device to route
// against, and the bridges to route on it.
type Job struct {
	Device  string       `yaml:"device"`
	Bridges []BridgeSpec `yaml:"bridges"`
}

// Load reads and parses a YAML job description from path.
func Load(path string) (Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return Job{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a YAML job description from r.
func Parse(r io.Reader) (Job, error) {
	var j Job
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&j); err != nil {
		return Job{}, fmt.Errorf("config: %w", err)
	}
	if len(j.Bridges) == 0 {
		return Job{}, ErrEmptyBridgeList
	}
	return j, nil
}

// DeviceID returns j's device field as a device.ID.
func (j Job) DeviceID() device.ID {
	return device.ID(j.Device)
}

// BridgeList converts j's bridge specs into the bridge.Bridge slice
// slotroute.Route expects.
func (j Job) BridgeList() []bridge.Bridge {
	out := make([]bridge.Bridge, len(j.Bridges))
	for i, b := range j.Bridges {
		out[i] = bridge.Bridge{Name: b.Name, Src: b.Src, Dst: b.Dst, Width: b.Width}
	}
	return out
}
