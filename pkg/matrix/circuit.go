package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// CircuitMatrix is a real MNA system: node rows 1..n followed by branch rows.
type CircuitMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
}

var _ DeviceMatrix = (*CircuitMatrix)(nil)

func NewMatrix(size int) (*CircuitMatrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid matrix size: %d", size)
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &CircuitMatrix{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
	}, nil
}

func (m *CircuitMatrix) inBounds(i int) bool { return i > 0 && i <= m.Size }

// AddElement adds value at (i, j). Index 0 is ground and is dropped.
func (m *CircuitMatrix) AddElement(i, j int, value float64) {
	if !m.inBounds(i) || !m.inBounds(j) {
		return
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (m *CircuitMatrix) AddRHS(i int, value float64) {
	if !m.inBounds(i) {
		return
	}
	m.rhs[i] += value
}

// LoadGmin adds gmin to the node diagonals 1..nodes so floating nodes stay
// solvable. Branch rows are left alone: a source loop must stay singular.
func (m *CircuitMatrix) LoadGmin(gmin float64, nodes int) {
	for i := 1; i <= min(nodes, m.Size); i++ {
		m.matrix.GetElement(int64(i), int64(i)).Real += gmin
	}
}

func (m *CircuitMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

func (m *CircuitMatrix) Solve() error {
	var err error

	err = m.matrix.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	m.solution, err = m.matrix.Solve(m.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

func (m *CircuitMatrix) RHS() []float64 {
	return m.rhs
}

// Value returns solution entry i, 0 for ground or out of range.
func (m *CircuitMatrix) Value(i int) float64 {
	if i <= 0 || i >= len(m.solution) {
		return 0
	}
	return m.solution[i]
}

func (m *CircuitMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
		m.matrix = nil
	}
}
