package netlist

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/toy-smith/pkg/device"
)

// ErrFormat matches every *FormatError.
var ErrFormat = errors.New("invalid format")

// FormatError reports text that could not be turned into a value.
type FormatError struct {
	Field  string // what was being parsed, e.g. "inductance"
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// SI prefixes accepted in front of H and F.
var prefixMap = map[string]float64{
	"p": 1e-12, // pico
	"n": 1e-9,  // nano
	"u": 1e-6,  // micro
	"f": 1e-15, // femto
	"m": 1e-3,  // milli
	"":  1.0,
}

var (
	lcPattern       = regexp.MustCompile(`^([0-9.]+)\s*([pnufmPNUFM]?)[HhFf]`)
	mantissaPattern = regexp.MustCompile(`^([0-9.]+)`)
	bareUnitPattern = regexp.MustCompile(`(^\(?|[+-])i($|[^a-zA-Z])`) // "j", "1-j" but not "inf"
)

// ParseInductanceOrCapacitance parses "<number>[prefix]<H|F>", e.g. "10 nH"
// or "2.2pF", into henries or farads.
func ParseInductanceOrCapacitance(text string) (float64, error) {
	const field = "inductance/capacitance"
	if text == "" {
		return 0, &FormatError{Field: field, Input: text, Reason: "empty value"}
	}
	matches := lcPattern.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return 0, &FormatError{Field: field, Input: text, Reason: "expected <number>[p|n|u|f|m]<H|F>"}
	}
	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, &FormatError{Field: field, Input: text, Reason: "bad mantissa"}
	}
	return num * prefixMap[strings.ToLower(matches[2])], nil
}

// ParseResistance reads the leading number of text; any unit after it is ignored.
func ParseResistance(text string) (float64, error) {
	const field = "resistance"
	if text == "" {
		return 0, &FormatError{Field: field, Input: text, Reason: "empty value"}
	}
	matches := mantissaPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if matches == nil {
		return 0, &FormatError{Field: field, Input: text, Reason: "expected a number"}
	}
	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, &FormatError{Field: field, Input: text, Reason: "bad mantissa"}
	}
	return num, nil
}

// ParseElectricalLength returns the length in degrees and a display string.
// A trailing degree or lambda glyph is dropped. In Wavelength mode the number
// is a fraction of a wavelength.
func ParseElectricalLength(text string, mode device.LengthMode) (float64, string, error) {
	value := strings.TrimSpace(text)
	value = strings.ReplaceAll(value, "Â°", "")
	value = strings.ReplaceAll(value, "°", "")
	value = strings.ReplaceAll(value, "λ", "")
	value = strings.TrimSpace(value)

	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, "", &FormatError{Field: "electrical length", Input: text, Reason: "expected a number"}
	}

	if mode == device.Wavelength {
		return num * 360.0, fmt.Sprintf("%g λ", num), nil
	}
	return num, fmt.Sprintf("%g°", num), nil
}

// ParseComplexImmittance parses "a+bj" style numbers. Whitespace is ignored
// and both j and i are accepted as the imaginary unit.
func ParseComplexImmittance(text string) (complex128, error) {
	const field = "complex value"
	t := strings.Join(strings.Fields(text), "")
	if t == "" {
		return 0, &FormatError{Field: field, Input: text, Reason: "empty value"}
	}
	t = strings.NewReplacer("j", "i", "J", "i").Replace(t)
	t = bareUnitPattern.ReplaceAllString(t, "${1}1i${2}")
	v, err := strconv.ParseComplex(t, 128)
	if err != nil {
		return 0, &FormatError{Field: field, Input: text, Reason: "expected a+bj"}
	}
	return v, nil
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"M":   1e6,   // mega, as in MHz
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var valuePattern = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)\s*(meg|[TGMKkmunpf])?(?:[Hh][Zz]|[Oo]hm|s)?$`)

// ParseValue parses a SPICE style number with an optional scale suffix,
// e.g. "1G", "433.92MHz", "2.2meg".
func ParseValue(val string) (float64, error) {
	matches := valuePattern.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, &FormatError{Field: "value", Input: val, Reason: "expected <number>[scale]"}
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, &FormatError{Field: "value", Input: val, Reason: err.Error()}
	}

	// factor
	if matches[2] != "" {
		num *= unitMap[matches[2]]
	}

	return num, nil
}
