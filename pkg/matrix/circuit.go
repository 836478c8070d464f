package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// CircuitMatrix is a complex modified nodal system backed by sparse.
// Nodes are 1-based; 0 is ground and never stored.
type CircuitMatrix struct {
	Size         int
	matrix       *sparse.Matrix
	rhs          []float64
	rhsImag      []float64
	solution     []float64
	solutionImag []float64
	config       *sparse.Configuration
}

func NewMatrix(size int) (*CircuitMatrix, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}

	return &CircuitMatrix{
		Size:    size,
		matrix:  mat,
		rhs:     make([]float64, size+1), // 1-based indexing
		rhsImag: make([]float64, size+1),
		config:  config,
	}, nil
}

func (m *CircuitMatrix) AddComplexElement(i, j int, real, imag float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return
	}
	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real += real
	element.Imag += imag
}

func (m *CircuitMatrix) AddComplexRHS(i int, real, imag float64) {
	if i <= 0 || i > m.Size {
		return
	}
	m.rhs[i] += real
	m.rhsImag[i] += imag
}

// Solve factors the matrix once and solves for the stored right hand side.
func (m *CircuitMatrix) Solve() error {
	if err := m.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %w", err)
	}

	var err error
	m.solution, m.solutionImag, err = m.matrix.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %w", err)
	}
	return nil
}

func (m *CircuitMatrix) GetComplexSolution(i int) complex128 {
	if i <= 0 || i > m.Size || m.solution == nil {
		return 0
	}
	return complex(m.solution[i], m.solutionImag[i])
}

func (m *CircuitMatrix) PrintSystem() {
	fmt.Printf("\nNodal Equations (%dx%d):\n", m.Size, m.Size)
	for i := 1; i <= m.Size; i++ {
		fmt.Printf("Equation %d:", i)
		for j := 1; j <= m.Size; j++ {
			element := m.matrix.GetElement(int64(i), int64(j))
			if element.Real != 0 || element.Imag != 0 {
				fmt.Printf("  (%g + j%g)*v%d", element.Real, element.Imag, j)
			}
		}
		fmt.Printf(" = %g + j%g\n", m.rhs[i], m.rhsImag[i])
	}
}

func (m *CircuitMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
