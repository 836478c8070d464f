package device

import (
	"fmt"

	"github.com/edp1096/toy-smith/pkg/immittance"
	"github.com/edp1096/toy-smith/pkg/matrix"
	"github.com/edp1096/toy-smith/pkg/util"
)

type Inductor struct {
	BaseDevice
}

var _ Device = (*Inductor)(nil)

func NewInductor(name string, value float64, orientation Orientation) *Inductor {
	return &Inductor{
		BaseDevice: BaseDevice{
			Name:        name,
			Value:       value,
			Orientation: orientation,
		},
	}
}

func (l *Inductor) GetType() string { return "L" }

func (l *Inductor) Describe() string {
	return fmt.Sprintf("L %s = %s", l.Orientation, util.FormatValueFactor(l.Value, "H"))
}

// Admittance of the fully applied inductor, 1/(jωL).
func (l *Inductor) Admittance(status *CircuitStatus) immittance.Admittance {
	return immittance.YRatio(1, complex(0, status.Omega()*l.Value))
}

func (l *Inductor) Stamp(matrix matrix.DeviceMatrix, node int, status *CircuitStatus) (int, error) {
	return l.stampLumped(matrix, node, l.Admittance(status))
}

func (l *Inductor) sealed() {}
