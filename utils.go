package sparmat

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ElementCount returns the number of stored elements, which equals the
// number of distinct (row, col) pairs inserted so far.
func (m *Matrix) ElementCount() int {
	return len(m.elements)
}

// RowElements returns row r's elements in chain order, which is strictly
// increasing column order. The returned slice is empty for an empty or
// out-of-range row.
func (m *Matrix) RowElements(r int) []*Element {
	if r < 1 || r > m.Size {
		return nil
	}
	var out []*Element
	for id := m.FirstInRow[r]; id != None; {
		e := &m.elements[id-1]
		out = append(out, e)
		id = e.NextInRow
	}
	return out
}

// ColElements returns column c's elements in chain order, which is
// strictly increasing row order.
func (m *Matrix) ColElements(c int) []*Element {
	if c < 1 || c > m.Size {
		return nil
	}
	var out []*Element
	for id := m.FirstInCol[c]; id != None; {
		e := &m.elements[id-1]
		out = append(out, e)
		id = e.NextInCol
	}
	return out
}

// LargestElement returns the largest element magnitude in the matrix,
// or 0 for an empty matrix.
func (m *Matrix) LargestElement() float64 {
	largest := 0.0
	for c := 1; c <= m.Size; c++ {
		for id := m.FirstInCol[c]; id != None; {
			e := &m.elements[id-1]
			if mag := elementMag(e); mag > largest {
				largest = mag
			}
			id = e.NextInCol
		}
	}
	return largest
}

// elementMag returns the 1-norm magnitude of an element's value.
func elementMag(e *Element) float64 {
	return math.Abs(real(e.Value)) + math.Abs(imag(e.Value))
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
