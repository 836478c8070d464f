package device

import (
	"fmt"

	"github.com/edp1096/toy-smith/pkg/immittance"
	"github.com/edp1096/toy-smith/pkg/matrix"
	"github.com/edp1096/toy-smith/pkg/util"
)

type Capacitor struct {
	BaseDevice
}

var _ Device = (*Capacitor)(nil)

func NewCapacitor(name string, value float64, orientation Orientation) *Capacitor {
	return &Capacitor{
		BaseDevice: BaseDevice{
			Name:        name,
			Value:       value,
			Orientation: orientation,
		},
	}
}

func (c *Capacitor) GetType() string { return "C" }

func (c *Capacitor) Describe() string {
	return fmt.Sprintf("C %s = %s", c.Orientation, util.FormatValueFactor(c.Value, "F"))
}

// Admittance of the fully applied capacitor, jωC.
func (c *Capacitor) Admittance(status *CircuitStatus) immittance.Admittance {
	return immittance.Y(complex(0, status.Omega()*c.Value)) // C * jω
}

func (c *Capacitor) Stamp(matrix matrix.DeviceMatrix, node int, status *CircuitStatus) (int, error) {
	return c.stampLumped(matrix, node, c.Admittance(status))
}

func (c *Capacitor) sealed() {}
