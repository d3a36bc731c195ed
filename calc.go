package sparmat

import (
	"fmt"
)

// MulVec computes y = M·x by walking every row chain. The vectors use
// the matrix's 1-based indexing: x must have length Size+1 with index 0
// unused, and the result has the same shape.
func (m *Matrix) MulVec(x []complex128) ([]complex128, error) {
	if len(x) < m.Size+1 {
		return nil, fmt.Errorf("vector length %d for size %d: %w", len(x), m.Size, ErrInvalidSize)
	}

	y := make([]complex128, m.Size+1)
	for r := 1; r <= m.Size; r++ {
		for id := m.FirstInRow[r]; id != None; {
			e := &m.elements[id-1]
			y[r] += e.Value * x[e.Col]
			id = e.NextInRow
		}
	}

	return y, nil
}
