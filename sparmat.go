package sparmat // import "sparmat"

import (
	"fmt"
)

// Create returns an empty n×n matrix. Every row and column head starts
// at None; elements are added through Insert. n must cover the largest
// row or column coordinate that will ever be inserted.
func Create(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("size %d: %w", n, ErrInvalidSize)
	}

	m := &Matrix{
		Size:       n,
		FirstInRow: make([]int, n+1), // 1-based indexing, [0] unused
		FirstInCol: make([]int, n+1),
	}
	for i := 0; i <= n; i++ {
		m.FirstInRow[i] = None
		m.FirstInCol[i] = None
	}

	return m, nil
}

// axis selects which chain a walk follows. Row chains are ordered by
// column, column chains by row; every chain operation is written once
// against this parameter and invoked for both axes.
type axis uint8

const (
	byRow axis = iota
	byCol
)

func (m *Matrix) heads(ax axis) []int {
	if ax == byRow {
		return m.FirstInRow
	}
	return m.FirstInCol
}

// orderKey returns the coordinate a chain is ordered by: Col on row
// chains, Row on column chains.
func orderKey(e *Element, ax axis) int {
	if ax == byRow {
		return e.Col
	}
	return e.Row
}

func chainNext(e *Element, ax axis) int {
	if ax == byRow {
		return e.NextInRow
	}
	return e.NextInCol
}

func setChainNext(e *Element, ax axis, id int) {
	if ax == byRow {
		e.NextInRow = id
	} else {
		e.NextInCol = id
	}
}

// locate walks chain number `chain` on the given axis looking for the
// position of key. It returns the id of the last element whose order key
// is smaller (None when the candidate belongs at the head) and, when an
// element with exactly this key already exists, that element's id.
func (m *Matrix) locate(ax axis, chain, key int) (prev, hit int) {
	prev = None
	cur := m.heads(ax)[chain]
	for cur != None {
		e := &m.elements[cur-1]
		k := orderKey(e, ax)
		if k == key {
			return prev, cur
		}
		if k > key {
			break
		}
		prev = cur
		cur = chainNext(e, ax)
	}
	return prev, None
}

// successor returns the element that will follow a candidate spliced in
// after prev: the current head when prev is None, otherwise prev's next.
func (m *Matrix) successor(ax axis, chain, prev int) int {
	if prev == None {
		return m.heads(ax)[chain]
	}
	return chainNext(&m.elements[prev-1], ax)
}

// splice links element id into a chain after prev, or at the head when
// prev is None. The element's own next link must already point at the
// old successor.
func (m *Matrix) splice(ax axis, chain, prev, id int) {
	if prev == None {
		m.heads(ax)[chain] = id
		return
	}
	setChainNext(&m.elements[prev-1], ax, id)
}

// Insert places value at (row, col). When the cell is empty a new
// element is appended to the store with a fresh id and spliced into its
// row and column chains at the ordered positions. When an element
// already exists there, its value is resolved exactly once per mode —
// Replace overwrites, Add accumulates — and the store does not grow.
// Invalid coordinates or an unknown mode abort the call before any
// mutation.
func (m *Matrix) Insert(row, col int, value complex128, mode Mode) error {
	if !mode.valid() {
		return fmt.Errorf("mode %d: %w", uint8(mode), ErrInvalidMode)
	}
	if row < 1 || row > m.Size || col < 1 || col > m.Size {
		return fmt.Errorf("element (%d,%d) outside [1,%d]: %w", row, col, m.Size, ErrInvalidCoordinate)
	}

	prevRow, hit := m.locate(byRow, row, col)
	if hit == None {
		// The row walk missing implies the column walk misses too, but
		// each axis stays authoritative about its own chain.
		prevCol, colHit := m.locate(byCol, col, row)
		if colHit == None {
			id := len(m.elements) + 1
			e := Element{
				ID:        id,
				Value:     value,
				Row:       row,
				Col:       col,
				NextInRow: m.successor(byRow, row, prevRow),
				NextInCol: m.successor(byCol, col, prevCol),
			}
			m.elements = append(m.elements, e)
			m.splice(byRow, row, prevRow, id)
			m.splice(byCol, col, prevCol, id)
			return nil
		}
		hit = colHit
	}

	e := &m.elements[hit-1]
	if mode == Add {
		e.Value += value
	} else {
		e.Value = value
	}
	return nil
}

// GetElement returns the element at (row, col), or nil when the cell is
// empty or the coordinates are out of range. Unlike Insert it never
// mutates the structure.
func (m *Matrix) GetElement(row, col int) *Element {
	if row < 1 || row > m.Size || col < 1 || col > m.Size {
		return nil
	}
	_, hit := m.locate(byCol, col, row)
	if hit == None {
		return nil
	}
	return &m.elements[hit-1]
}

// ElementByID returns the element with the given stable id, or nil when
// no such element exists.
func (m *Matrix) ElementByID(id int) *Element {
	if id < 1 || id > len(m.elements) {
		return nil
	}
	return &m.elements[id-1]
}
