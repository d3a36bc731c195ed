package sparmat

import (
	"fmt"
)

// Build constructs an n×n matrix from triples, inserting them in input
// order under a single resolution mode. For a repeated (row, col) pair
// the first occurrence creates the element and later occurrences resolve
// against it, so under Replace the last occurrence wins while under Add
// the final value is order-independent.
//
// The build is fail-fast: the first triple with invalid coordinates
// aborts it, the returned error reports that triple's position in the
// input, and no partial structure is returned.
func Build(triples []Triple, n int, mode Mode) (*Matrix, error) {
	m, err := Create(n)
	if err != nil {
		return nil, err
	}

	for i, t := range triples {
		if err := m.Insert(t.Row, t.Col, t.Value, mode); err != nil {
			return nil, fmt.Errorf("triple %d: %w", i, err)
		}
	}

	return m, nil
}
