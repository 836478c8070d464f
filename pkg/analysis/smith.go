package analysis

import (
	"fmt"
	"log/slog"

	"github.com/edp1096/toy-smith/internal/logging"
	"github.com/edp1096/toy-smith/pkg/circuit"
	"github.com/edp1096/toy-smith/pkg/device"
)

// SmithAnalysis evaluates a circuit's committed chain and stores every
// trace sample as result vectors.
type SmithAnalysis struct {
	BaseAnalysis
	cfg    Config
	chain  []device.Device
	result *Result
	logger *slog.Logger
}

func NewSmith() *SmithAnalysis {
	return &SmithAnalysis{
		BaseAnalysis: *NewBaseAnalysis(),
		logger:       logging.NewNop(),
	}
}

func (sa *SmithAnalysis) WithLogger(logger *slog.Logger) *SmithAnalysis {
	if logger != nil {
		sa.logger = logger
	}
	return sa
}

// Setup takes a snapshot of the chain and its settings. Later edits to ckt
// do not affect this analysis.
func (sa *SmithAnalysis) Setup(ckt *circuit.Circuit) error {
	if ckt == nil {
		return fmt.Errorf("circuit not set")
	}
	sa.Circuit = ckt

	status := ckt.Status()
	sa.cfg = Config{
		Frequency:   status.Frequency,
		Z0:          status.Z0,
		Termination: ckt.Termination(),
		Steps:       status.Steps,
	}
	if err := sa.cfg.Validate(); err != nil {
		return err
	}
	sa.chain = ckt.Snapshot()
	sa.result = nil
	sa.resetResults()

	sa.logger.Debug("smith analysis setup", "elements", len(sa.chain), "freq", sa.cfg.Frequency, "z0", sa.cfg.Z0)
	return nil
}

// Execute stores ELEMENT (-1 for the termination), T, and the real and
// imaginary parts of Z, Y, GZ and GY for every sample.
func (sa *SmithAnalysis) Execute() error {
	if sa.Circuit == nil {
		return fmt.Errorf("circuit not set")
	}

	result := Evaluate(sa.cfg, sa.chain, nil)
	sa.result = &result
	sa.resetResults()

	steps := float64(sa.cfg.Status().Steps)
	element := make([]int, len(result.Points))
	position := make([]float64, len(result.Points))
	element[0] = -1
	for i, seg := range result.Segments {
		for k := seg.First; k <= seg.Last; k++ {
			element[k] = i
			position[k] = float64(k-seg.First+1) / steps
		}
	}

	for k, p := range result.Points {
		sa.StoreResult(map[string]float64{
			"ELEMENT": float64(element[k]),
			"T":       position[k],
			"Z_RE":    p.Z.Real(),
			"Z_IM":    p.Z.Imag(),
			"Y_RE":    p.Y.Real(),
			"Y_IM":    p.Y.Imag(),
			"GZ_RE":   real(p.GammaZ),
			"GZ_IM":   imag(p.GammaZ),
			"GY_RE":   real(p.GammaY),
			"GY_IM":   imag(p.GammaY),
		})
	}

	sa.logger.Debug("smith analysis done", "points", len(result.Points), "final_z", result.Final.Z)
	return nil
}

// Result returns the last executed evaluation, or nil before Execute.
func (sa *SmithAnalysis) Result() *Result {
	return sa.result
}

// Preview evaluates the snapshot with a tentative element. The snapshot
// and the stored results are left untouched.
func (sa *SmithAnalysis) Preview(pending *Pending) Result {
	return Evaluate(sa.cfg, sa.chain, pending)
}

// PreviewSession evaluates the snapshot with the tentative element of an
// open edit session.
func (sa *SmithAnalysis) PreviewSession(session *circuit.EditSession) Result {
	index, dev := session.Pending()
	if dev == nil {
		return Evaluate(sa.cfg, sa.chain, nil)
	}
	return Evaluate(sa.cfg, sa.chain, &Pending{Index: index, Device: dev})
}
