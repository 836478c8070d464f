package device

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-smith/internal/consts"
	"github.com/edp1096/toy-smith/pkg/matrix"
)

// TransmissionLine is a lossless line section in cascade with the chain.
type TransmissionLine struct {
	Name   string
	Length float64 // Electrical length (deg), any real value
	Z0     float64 // Characteristic impedance
	Mode   LengthMode
}

var _ Device = (*TransmissionLine)(nil)

func NewTransmissionLine(name string, length, z0 float64, mode LengthMode) *TransmissionLine {
	return &TransmissionLine{
		Name:   name,
		Length: length,
		Z0:     z0,
		Mode:   mode,
	}
}

func (l *TransmissionLine) GetName() string { return l.Name }
func (l *TransmissionLine) GetType() string { return "TL" }

func (l *TransmissionLine) Describe() string {
	return fmt.Sprintf("TL %s Z0=%g", formatLength(l.Length, l.Mode), l.Z0)
}

// Angle is βl at sweep position t.
func (l *TransmissionLine) Angle(t float64) float64 {
	return l.Length * math.Pi / 180 * t
}

// Stamp uses the two-port admittance of the line,
// Y11 = Y22 = -jY0·cot(βl), Y12 = Y21 = jY0·csc(βl).
// Multiples of a half wavelength repeat the load and add nothing.
func (l *TransmissionLine) Stamp(matrix matrix.DeviceMatrix, node int, status *CircuitStatus) (int, error) {
	s, c := math.Sincos(l.Angle(1))
	if math.Abs(s) < consts.TanSnap {
		return node, nil
	}
	if l.Z0 == 0 {
		return node, fmt.Errorf("%s: zero characteristic impedance: %w", l.Name, ErrUnstampable)
	}

	y0 := 1 / l.Z0
	self := -y0 * c / s
	mutual := y0 / s

	in, out := node+1, node
	matrix.AddComplexElement(in, in, 0, self)
	matrix.AddComplexElement(out, out, 0, self)
	matrix.AddComplexElement(in, out, 0, mutual)
	matrix.AddComplexElement(out, in, 0, mutual)

	return in, nil
}

func (l *TransmissionLine) sealed() {}
