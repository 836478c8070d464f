package analysis

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/edp1096/toy-smith/pkg/circuit"
	"github.com/edp1096/toy-smith/pkg/device"
	"github.com/edp1096/toy-smith/pkg/immittance"
	"github.com/edp1096/toy-smith/pkg/matrix"
)

// ErrNodalUnsupported is returned when the chain holds an ideal short or
// open that a nodal matrix cannot represent.
var ErrNodalUnsupported = errors.New("chain not representable as a nodal system")

// NodalAnalysis solves the fully applied chain as a ladder network. With
// 1 A injected at the input node, the input node voltage is the input
// impedance.
type NodalAnalysis struct {
	BaseAnalysis
	buffer    *matrix.StampBuffer
	inputNode int
	zin       complex128
	debug     bool
}

func NewNodal() *NodalAnalysis {
	return &NodalAnalysis{BaseAnalysis: *NewBaseAnalysis()}
}

// SetDebug prints the nodal system before solving.
func (na *NodalAnalysis) SetDebug(debug bool) {
	na.debug = debug
}

func (na *NodalAnalysis) Setup(ckt *circuit.Circuit) error {
	if ckt == nil {
		return fmt.Errorf("circuit not set")
	}
	na.Circuit = ckt
	na.resetResults()

	status := ckt.Status()
	termination := ckt.Termination()
	if termination.Complex() == 0 {
		return fmt.Errorf("termination is a short: %w", ErrNodalUnsupported)
	}

	buffer := &matrix.StampBuffer{}
	node := 1
	if y := termination.Admittance(); !y.IsInf() {
		g, b := real(y.Complex()), imag(y.Complex())
		buffer.AddComplexElement(node, node, g, b)
	}

	for _, dev := range ckt.Snapshot() {
		next, err := dev.Stamp(buffer, node, status)
		if err != nil {
			if errors.Is(err, device.ErrUnstampable) {
				return fmt.Errorf("stamping %s: %w: %w", dev.GetName(), ErrNodalUnsupported, err)
			}
			return fmt.Errorf("stamping %s: %w", dev.GetName(), err)
		}
		node = next
	}

	buffer.AddComplexRHS(node, 1, 0)

	na.buffer = buffer
	na.inputNode = node
	return nil
}

func (na *NodalAnalysis) Execute() error {
	if na.buffer == nil {
		return fmt.Errorf("circuit not set")
	}

	mat, err := matrix.NewMatrix(na.buffer.Size)
	if err != nil {
		return err
	}
	defer mat.Destroy()

	na.buffer.Replay(mat)
	if na.debug {
		mat.PrintSystem()
	}

	if err := mat.Solve(); err != nil {
		return fmt.Errorf("nodal solve: %w", err)
	}

	na.zin = mat.GetComplexSolution(na.inputNode)
	na.StoreComplexResult("ZIN", na.zin)
	return nil
}

// InputImpedance is the solved input impedance.
func (na *NodalAnalysis) InputImpedance() complex128 {
	return na.zin
}

// Verification compares the propagated final impedance with the nodal solution.
type Verification struct {
	Propagated immittance.Impedance
	Nodal      complex128
	Error      float64 // Relative error |Zp - Zn| / max(|Zn|, 1)
}

func (v Verification) Within(tolerance float64) bool {
	return v.Error <= tolerance
}

// Verify runs both the propagation engine and a nodal solver on ckt.
func Verify(ckt *circuit.Circuit) (Verification, error) {
	return NewNodal().Verify(ckt)
}

func (na *NodalAnalysis) Verify(ckt *circuit.Circuit) (Verification, error) {
	status := ckt.Status()
	_, final := Propagate(ckt.Termination(), ckt.Snapshot(), status)
	if final.IsInf() {
		return Verification{Propagated: final}, fmt.Errorf("input is open: %w", ErrNodalUnsupported)
	}

	if err := na.Setup(ckt); err != nil {
		return Verification{Propagated: final}, err
	}
	if err := na.Execute(); err != nil {
		return Verification{Propagated: final}, err
	}

	zn := na.InputImpedance()
	return Verification{
		Propagated: final,
		Nodal:      zn,
		Error:      cmplx.Abs(final.Complex()-zn) / max(cmplx.Abs(zn), 1),
	}, nil
}
