package netlist

import (
	"fmt"
	"strings"

	"github.com/edp1096/toy-smith/pkg/device"
)

// ElementParams is the parameter dictionary of one chain element as entered
// by a user: type tag, orientation, value or length text and line settings.
type ElementParams struct {
	Type    string  `mapstructure:"type" yaml:"type"` // R, L, C, TL, STUB
	Name    string  `mapstructure:"name" yaml:"name,omitempty"`
	Orient  string  `mapstructure:"orient" yaml:"orient,omitempty"` // series, shunt
	Value   string  `mapstructure:"value" yaml:"value,omitempty"`   // "10 nH", "25"
	Length  string  `mapstructure:"length" yaml:"length,omitempty"` // "90", "0.25"
	LenMode string  `mapstructure:"len_mode" yaml:"len_mode,omitempty"`
	Z0      float64 `mapstructure:"z0" yaml:"z0,omitempty"`
	Kind    string  `mapstructure:"kind" yaml:"kind,omitempty"` // open, short
}

// CreateDevice converts entered parameters into a typed element. A zero Z0
// for a line or stub falls back to defaultZ0.
func CreateDevice(p ElementParams, defaultZ0 float64) (device.Device, error) {
	switch strings.ToUpper(strings.TrimSpace(p.Type)) {
	case "R":
		orient, err := device.ParseOrientation(p.Orient)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		value, err := ParseResistance(p.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		return device.NewResistor(p.Name, value, orient), nil

	case "L", "C":
		orient, err := device.ParseOrientation(p.Orient)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		value, err := ParseInductanceOrCapacitance(p.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		if strings.EqualFold(p.Type, "L") {
			return device.NewInductor(p.Name, value, orient), nil
		}
		return device.NewCapacitor(p.Name, value, orient), nil

	case "TL", "STUB":
		mode, err := device.ParseLengthMode(p.LenMode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		length, _, err := ParseElectricalLength(p.Length, mode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		z0 := p.Z0
		if z0 == 0 {
			z0 = defaultZ0
		}
		if strings.EqualFold(p.Type, "TL") {
			return device.NewTransmissionLine(p.Name, length, z0, mode), nil
		}
		kind, err := device.ParseStubKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		return device.NewStub(p.Name, length, z0, mode, kind), nil
	}

	return nil, fmt.Errorf("%s: unsupported element type %q", p.Name, p.Type)
}

// typeFromName maps an element name to its type tag by prefix, e.g. TL3 -> TL.
func typeFromName(name string) string {
	upper := strings.ToUpper(name)
	switch {
	case strings.HasPrefix(upper, "TL"):
		return "TL"
	case strings.HasPrefix(upper, "ST"):
		return "STUB"
	case strings.HasPrefix(upper, "R"):
		return "R"
	case strings.HasPrefix(upper, "L"):
		return "L"
	case strings.HasPrefix(upper, "C"):
		return "C"
	}
	return ""
}
