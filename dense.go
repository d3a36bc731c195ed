package sparmat

import (
	"fmt"
)

// ToDense places triples directly into an n×n dense matrix. Placement is
// positional with last write wins — duplicates are not accumulated. It
// is the reference form the sparse structure is verified against, and
// shares Build's fail-fast coordinate policy so both operations accept
// the same inputs.
func ToDense(triples []Triple, n int) ([][]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("size %d: %w", n, ErrInvalidSize)
	}

	dense := make([][]complex128, n)
	for i := range dense {
		dense[i] = make([]complex128, n)
	}

	for i, t := range triples {
		if t.Row < 1 || t.Row > n || t.Col < 1 || t.Col > n {
			return nil, fmt.Errorf("triple %d: element (%d,%d) outside [1,%d]: %w",
				i, t.Row, t.Col, n, ErrInvalidCoordinate)
		}
		dense[t.Row-1][t.Col-1] = t.Value
	}

	return dense, nil
}

// Dense expands the built structure into dense form by walking every row
// chain.
func (m *Matrix) Dense() [][]complex128 {
	dense := make([][]complex128, m.Size)
	for i := range dense {
		dense[i] = make([]complex128, m.Size)
	}

	for r := 1; r <= m.Size; r++ {
		for id := m.FirstInRow[r]; id != None; {
			e := &m.elements[id-1]
			dense[r-1][e.Col-1] = e.Value
			id = e.NextInRow
		}
	}

	return dense
}

// NonZero extracts the non-zero entries of a dense matrix as 1-based
// triples in row-major order.
func NonZero(dense [][]complex128) []Triple {
	var triples []Triple
	for i := range dense {
		for j, v := range dense[i] {
			if v != 0 {
				triples = append(triples, Triple{Row: i + 1, Col: j + 1, Value: v})
			}
		}
	}
	return triples
}
