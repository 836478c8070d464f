package device

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/edp1096/toy-smith/internal/consts"
	"github.com/edp1096/toy-smith/pkg/immittance"
	"github.com/edp1096/toy-smith/pkg/matrix"
)

// ErrUnstampable is returned by Stamp when an element reduces to an ideal
// short or open that a nodal matrix cannot represent.
var ErrUnstampable = errors.New("element cannot be stamped")

// Device is one network element of a chain. The set is closed: Resistor,
// Inductor, Capacitor, TransmissionLine and Stub.
type Device interface {
	GetName() string
	GetType() string
	Describe() string
	// Stamp adds the fully applied element on top of node and returns the
	// node the rest of the chain continues from.
	Stamp(matrix matrix.DeviceMatrix, node int, status *CircuitStatus) (int, error)
	sealed()
}

type Orientation int

const (
	Series Orientation = iota
	Shunt
)

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "series", "ser", "s":
		return Series, nil
	case "shunt", "parallel", "par", "p":
		return Shunt, nil
	}
	return Series, fmt.Errorf("unknown orientation %q", s)
}

func (o Orientation) String() string {
	if o == Shunt {
		return "shunt"
	}
	return "series"
}

type StubKind int

const (
	Open StubKind = iota
	Short
)

func ParseStubKind(s string) (StubKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "open", "oc":
		return Open, nil
	case "short", "sc":
		return Short, nil
	}
	return Open, fmt.Errorf("unknown stub termination %q", s)
}

func (k StubKind) String() string {
	if k == Short {
		return "short"
	}
	return "open"
}

// LengthMode is how an electrical length was entered; the stored length is always degrees.
type LengthMode int

const (
	Degrees LengthMode = iota
	Wavelength
)

func ParseLengthMode(s string) (LengthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deg", "degree", "degrees":
		return Degrees, nil
	case "lambda", "wl", "wavelength", "λ":
		return Wavelength, nil
	}
	return Degrees, fmt.Errorf("unknown length mode %q", s)
}

func (m LengthMode) String() string {
	if m == Wavelength {
		return "lambda"
	}
	return "deg"
}

// CircuitStatus is the fixed evaluation setting shared by every element of a chain.
type CircuitStatus struct {
	Frequency float64 // Hz
	Z0        float64 // Reference impedance
	Steps     int     // Samples per element sweep
}

func (s *CircuitStatus) Omega() float64 {
	return 2 * math.Pi * s.Frequency
}

// BaseDevice is shared by the lumped elements.
type BaseDevice struct {
	Name        string
	Value       float64
	Orientation Orientation
}

func (d *BaseDevice) GetName() string { return d.Name }

// stampLumped places a lumped element with admittance y either between node
// and a fresh node (series) or from node to ground (shunt).
func (d *BaseDevice) stampLumped(m matrix.DeviceMatrix, node int, y immittance.Admittance) (int, error) {
	if y.IsInf() {
		return node, fmt.Errorf("%s: ideal short: %w", d.Name, ErrUnstampable)
	}
	switch d.Orientation {
	case Shunt:
		stampAdmittance(m, node, 0, y.Complex())
		return node, nil
	default:
		if y.Complex() == 0 {
			return node, fmt.Errorf("%s: ideal open in series: %w", d.Name, ErrUnstampable)
		}
		stampAdmittance(m, node+1, node, y.Complex())
		return node + 1, nil
	}
}

// stampAdmittance is the two-terminal admittance stamp; node 0 is ground.
func stampAdmittance(m matrix.DeviceMatrix, n1, n2 int, y complex128) {
	g, b := real(y), imag(y)
	if n1 != 0 {
		m.AddComplexElement(n1, n1, g, b)
		if n2 != 0 {
			m.AddComplexElement(n1, n2, -g, -b)
		}
	}
	if n2 != 0 {
		m.AddComplexElement(n2, n2, g, b)
		if n1 != 0 {
			m.AddComplexElement(n2, n1, -g, -b)
		}
	}
}

// Tan returns tan(angle). Angles whose cosine is within consts.TanSnap of
// zero are singular and report singular=true; angles whose sine is that
// close to zero return exactly 0.
func Tan(angle float64) (tan float64, singular bool) {
	s, c := math.Sincos(angle)
	if math.Abs(c) < consts.TanSnap {
		return math.Inf(1), true
	}
	if math.Abs(s) < consts.TanSnap {
		return 0, false
	}
	return s / c, false
}

func formatLength(deg float64, mode LengthMode) string {
	if mode == Wavelength {
		return fmt.Sprintf("%.4g λ", deg/360)
	}
	return fmt.Sprintf("%.2f°", deg)
}
