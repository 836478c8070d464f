// Package config loads chain project files written in YAML.
//
//	title: single stub match
//	frequency: 1GHz
//	z0: 50
//	load: 100-50j
//	load_mode: impedance
//	elements:
//	  - {type: TL, length: 0.1, len_mode: lambda}
//	  - {type: STUB, length: 45, kind: short}
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/edp1096/toy-smith/pkg/netlist"
)

var ErrInvalidProject = errors.New("invalid project file")

// Project mirrors the file layout. Numbers may be written as text with SI
// suffixes ("1GHz", "2.2meg").
type Project struct {
	Title     string                  `mapstructure:"title"`
	Frequency string                  `mapstructure:"frequency"`
	Z0        string                  `mapstructure:"z0"`
	Steps     int                     `mapstructure:"steps"`
	Load      string                  `mapstructure:"load"`
	LoadMode  string                  `mapstructure:"load_mode"`
	Elements  []netlist.ElementParams `mapstructure:"elements"`
}

func Load(path string) (*netlist.NetlistData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(content)
}

func Parse(content []byte) (*netlist.NetlistData, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}

	project, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return project.NetlistData()
}

// Decode converts a generic document into a Project.
func Decode(raw map[string]any) (*Project, error) {
	project := &Project{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           project,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}
	return project, nil
}

// NetlistData applies the project on top of the defaults.
func (p *Project) NetlistData() (*netlist.NetlistData, error) {
	data := netlist.NewNetlistData()
	data.Title = p.Title
	data.Elements = p.Elements

	var err error
	if p.Frequency != "" {
		if data.Frequency, err = netlist.ParseValue(p.Frequency); err != nil {
			return nil, fmt.Errorf("frequency: %w", err)
		}
	}
	if p.Z0 != "" {
		if data.Z0, err = netlist.ParseValue(p.Z0); err != nil {
			return nil, fmt.Errorf("z0: %w", err)
		}
	}
	if p.Steps < 0 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidProject, p.Steps)
	}
	if p.Steps > 0 {
		data.Steps = p.Steps
	}
	if data.LoadMode, err = netlist.ParseLoadMode(p.LoadMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}
	if p.Load != "" {
		if data.Load, err = netlist.ParseComplexImmittance(p.Load); err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
	}

	return data, nil
}
