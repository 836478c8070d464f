package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/toy-smith/internal/consts"
	"github.com/edp1096/toy-smith/pkg/device"
)

type LoadMode int

const (
	LoadImpedance LoadMode = iota
	LoadAdmittance
)

func ParseLoadMode(s string) (LoadMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "z", "impedance":
		return LoadImpedance, nil
	case "y", "admittance":
		return LoadAdmittance, nil
	}
	return LoadImpedance, fmt.Errorf("unknown load mode %q", s)
}

func (m LoadMode) String() string {
	if m == LoadAdmittance {
		return "admittance"
	}
	return "impedance"
}

type NetlistData struct {
	Title     string          // Chain title
	Frequency float64         // Evaluation frequency (Hz)
	Z0        float64         // Reference impedance
	Steps     int             // Samples per element sweep
	Load      complex128      // Termination as entered
	LoadMode  LoadMode        // Whether Load is an impedance or an admittance
	Elements  []ElementParams // Load side first
}

func NewNetlistData() *NetlistData {
	return &NetlistData{
		Frequency: consts.DefaultFrequency,
		Z0:        consts.DefaultZ0,
		Steps:     consts.DefaultSteps,
		Load:      consts.DefaultLoad,
	}
}

// Devices builds the typed chain. Unnamed elements get <type><position>.
func (n *NetlistData) Devices() ([]device.Device, error) {
	devices := make([]device.Device, 0, len(n.Elements))
	for i, p := range n.Elements {
		if p.Name == "" {
			p.Name = fmt.Sprintf("%s%d", strings.ToUpper(p.Type), i+1)
		}
		dev, err := CreateDevice(p, n.Z0)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

var spacePattern = regexp.MustCompile(`\s+`)

// Parse reads a chain netlist. The first line is the title; later lines
// starting with an asterisk are comments.
//
//	stub match at 1 GHz
//	.freq 1G
//	.z0 50
//	.load 100-50j
//	TL1 0.1 lambda z0=50
//	ST1 45 deg short
func Parse(input string) (*NetlistData, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	netlistData := NewNetlistData()

	// Title or comment
	if scanner.Scan() {
		netlistData.Title = strings.TrimPrefix(scanner.Text(), "*")
		netlistData.Title = strings.TrimSpace(netlistData.Title)
	}

	var currentLine string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		// Whole-line and trailing comments
		if idx := strings.Index(line, "*"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
			if len(line) == 0 {
				continue
			}
		}

		// Line continue
		if strings.HasPrefix(line, "+") {
			if currentLine != "" {
				currentLine += " " + strings.TrimSpace(line[1:])
			}
			continue
		}

		if currentLine != "" {
			if err := parseLine(netlistData, currentLine); err != nil {
				return nil, err
			}
		}
		currentLine = line
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Process final line if exists
	if currentLine != "" {
		if err := parseLine(netlistData, currentLine); err != nil {
			return nil, err
		}
	}

	return netlistData, nil
}

func parseLine(netlistData *NetlistData, line string) error {
	line = spacePattern.ReplaceAllString(line, " ")

	if strings.HasPrefix(line, ".") {
		return parseDotOperator(netlistData, line)
	}

	element, err := parseElement(line)
	if err != nil {
		return err
	}
	netlistData.Elements = append(netlistData.Elements, *element)
	return nil
}

// Parse .freq, .z0, .steps, .load, .end
func parseDotOperator(netlistData *NetlistData, line string) error {
	var err error

	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ".freq", ".frequency":
		if len(fields) < 2 {
			return fmt.Errorf(".freq needs a value")
		}
		netlistData.Frequency, err = ParseValue(fields[1])
		if err != nil {
			return fmt.Errorf("invalid frequency: %w", err)
		}

	case ".z0":
		if len(fields) < 2 {
			return fmt.Errorf(".z0 needs a value")
		}
		netlistData.Z0, err = ParseValue(fields[1])
		if err != nil {
			return fmt.Errorf("invalid z0: %w", err)
		}

	case ".steps":
		if len(fields) < 2 {
			return fmt.Errorf(".steps needs a value")
		}
		steps, err := strconv.Atoi(fields[1])
		if err != nil || steps < 1 {
			return fmt.Errorf("invalid steps %q", fields[1])
		}
		netlistData.Steps = steps

	case ".load":
		args := fields[1:]
		if len(args) > 0 {
			if mode, err := ParseLoadMode(args[0]); err == nil && len(args) > 1 {
				netlistData.LoadMode = mode
				args = args[1:]
			}
		}
		netlistData.Load, err = ParseComplexImmittance(strings.Join(args, ""))
		if err != nil {
			return fmt.Errorf("invalid load: %w", err)
		}

	case ".end":

	default:
		return fmt.Errorf("unknown dot command %s", fields[0])
	}

	return nil
}

// parseElement reads "<name> <args...>". Keywords set orientation, length
// mode and stub kind; key=value pairs set fields; everything else is joined
// into the value (R, L, C) or length (TL, STUB) text.
func parseElement(line string) (*ElementParams, error) {
	fields := strings.Fields(line)
	name := fields[0]
	typ := typeFromName(name)
	if typ == "" {
		return nil, fmt.Errorf("unknown element type for %s", name)
	}
	if len(fields) < 2 {
		return nil, fmt.Errorf("%s: missing value", name)
	}

	elem := &ElementParams{Type: typ, Name: name}
	var positional []string

	for _, field := range fields[1:] {
		if key, val, ok := strings.Cut(field, "="); ok {
			switch strings.ToLower(key) {
			case "z0":
				z0, err := ParseValue(val)
				if err != nil {
					return nil, fmt.Errorf("%s: invalid z0: %w", name, err)
				}
				elem.Z0 = z0
			case "orient":
				elem.Orient = val
			case "mode", "len_mode":
				elem.LenMode = val
			case "kind":
				elem.Kind = val
			case "value":
				elem.Value = val
			case "length":
				elem.Length = val
			default:
				return nil, fmt.Errorf("%s: unknown parameter %s", name, key)
			}
			continue
		}

		switch strings.ToLower(field) {
		case "series", "shunt":
			elem.Orient = field
		case "deg", "lambda", "λ":
			elem.LenMode = field
		case "open", "short":
			elem.Kind = field
		default:
			positional = append(positional, field)
		}
	}

	text := strings.Join(positional, "")
	if text == "" {
		return elem, nil
	}
	if typ == "TL" || typ == "STUB" {
		elem.Length = text
		if elem.LenMode == "" && strings.Contains(text, "λ") {
			elem.LenMode = "lambda"
		}
	} else {
		elem.Value = text
	}

	return elem, nil
}
