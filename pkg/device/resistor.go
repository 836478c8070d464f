package device

import (
	"fmt"

	"github.com/edp1096/toy-smith/pkg/immittance"
	"github.com/edp1096/toy-smith/pkg/matrix"
	"github.com/edp1096/toy-smith/pkg/util"
)

type Resistor struct {
	BaseDevice
}

var _ Device = (*Resistor)(nil)

func NewResistor(name string, value float64, orientation Orientation) *Resistor {
	return &Resistor{
		BaseDevice: BaseDevice{
			Name:        name,
			Value:       value,
			Orientation: orientation,
		},
	}
}

func (r *Resistor) GetType() string { return "R" }

func (r *Resistor) Describe() string {
	return fmt.Sprintf("R %s = %s", r.Orientation, util.FormatValueFactor(r.Value, "Ohm"))
}

// Admittance of the fully applied resistor, 1/R.
func (r *Resistor) Admittance(status *CircuitStatus) immittance.Admittance {
	return immittance.YRatio(1, complex(r.Value, 0))
}

func (r *Resistor) Stamp(matrix matrix.DeviceMatrix, node int, status *CircuitStatus) (int, error) {
	return r.stampLumped(matrix, node, r.Admittance(status))
}

func (r *Resistor) sealed() {}
