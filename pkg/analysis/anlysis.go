package analysis

import (
	"math"
	"math/cmplx"

	"github.com/edp1096/toy-smith/pkg/circuit"
)

type Analysis interface {
	Setup(ckt *circuit.Circuit) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Circuit *circuit.Circuit
	results map[string][]float64 // key: variable name, value: result by sample
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

func (a *BaseAnalysis) StoreResult(solution map[string]float64) {
	for name, value := range solution {
		a.results[name] = append(a.results[name], value)
	}
}

// StoreComplexResult appends name_RE, name_IM, name_MAG and name_PHASE (deg).
func (a *BaseAnalysis) StoreComplexResult(name string, value complex128) {
	a.StoreResult(map[string]float64{
		name + "_RE":    real(value),
		name + "_IM":    imag(value),
		name + "_MAG":   cmplx.Abs(value),
		name + "_PHASE": cmplx.Phase(value) * 180.0 / math.Pi,
	})
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

func (a *BaseAnalysis) resetResults() {
	a.results = make(map[string][]float64)
}

var (
	_ Analysis = (*SmithAnalysis)(nil)
	_ Analysis = (*NodalAnalysis)(nil)
)
