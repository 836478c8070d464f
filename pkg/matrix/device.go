package matrix

type DeviceMatrix interface {
	AddComplexElement(i, j int, real, imag float64) // 1-based indexing
	AddComplexRHS(i int, real, imag float64)
}

type stamp struct {
	i, j       int
	real, imag float64
}

// StampBuffer records stamps while the system size is still unknown and
// replays them into a sized matrix.
type StampBuffer struct {
	Size     int
	elements []stamp
	rhs      []stamp
}

var _ DeviceMatrix = (*StampBuffer)(nil)

func (b *StampBuffer) AddComplexElement(i, j int, real, imag float64) {
	b.elements = append(b.elements, stamp{i, j, real, imag})
	b.Size = max(b.Size, i, j)
}

func (b *StampBuffer) AddComplexRHS(i int, real, imag float64) {
	b.rhs = append(b.rhs, stamp{i: i, real: real, imag: imag})
	b.Size = max(b.Size, i)
}

func (b *StampBuffer) Replay(m DeviceMatrix) {
	for _, s := range b.elements {
		m.AddComplexElement(s.i, s.j, s.real, s.imag)
	}
	for _, s := range b.rhs {
		m.AddComplexRHS(s.i, s.real, s.imag)
	}
}
