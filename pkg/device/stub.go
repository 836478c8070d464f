package device

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-smith/pkg/immittance"
	"github.com/edp1096/toy-smith/pkg/matrix"
)

// Stub is an open or short circuited line section connected in shunt.
type Stub struct {
	Name   string
	Length float64 // Electrical length (deg)
	Z0     float64
	Mode   LengthMode
	Kind   StubKind
}

var _ Device = (*Stub)(nil)

func NewStub(name string, length, z0 float64, mode LengthMode, kind StubKind) *Stub {
	return &Stub{
		Name:   name,
		Length: length,
		Z0:     z0,
		Mode:   mode,
		Kind:   kind,
	}
}

func (s *Stub) GetName() string { return s.Name }
func (s *Stub) GetType() string { return "STUB" }

func (s *Stub) Describe() string {
	return fmt.Sprintf("Stub %s %s Z0=%g", s.Kind, formatLength(s.Length, s.Mode), s.Z0)
}

func (s *Stub) Angle(t float64) float64 {
	return s.Length * math.Pi / 180 * t
}

// InputImpedance of the stub grown to fraction t of its length:
// jZ0·tan(βl) when shorted, -jZ0/tan(βl) when open.
func (s *Stub) InputImpedance(t float64) immittance.Impedance {
	tan, singular := Tan(s.Angle(t))
	if s.Kind == Short {
		if singular {
			return immittance.InfiniteZ()
		}
		return immittance.Z(complex(0, s.Z0*tan))
	}
	if singular {
		return immittance.Z(0)
	}
	return immittance.ZRatio(complex(0, -s.Z0), complex(tan, 0))
}

func (s *Stub) Stamp(matrix matrix.DeviceMatrix, node int, status *CircuitStatus) (int, error) {
	y := s.InputImpedance(1).Admittance()
	if y.IsInf() {
		return node, fmt.Errorf("%s: stub input is a short: %w", s.Name, ErrUnstampable)
	}
	stampAdmittance(matrix, node, 0, y.Complex())
	return node, nil
}

func (s *Stub) sealed() {}
