package sparmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sparmat"
)

func TestToDense_LastWriteWins(t *testing.T) {
	triples := []sparmat.Triple{
		{Row: 1, Col: 1, Value: 1},
		{Row: 2, Col: 1, Value: 5i},
		{Row: 1, Col: 1, Value: 3}, // overwrites, no accumulation
	}

	dense, err := sparmat.ToDense(triples, 2)
	require.NoError(t, err)
	require.Equal(t, complex128(3), dense[0][0])
	require.Equal(t, complex128(5i), dense[1][0])
	require.Equal(t, complex128(0), dense[0][1])
}

func TestToDense_Errors(t *testing.T) {
	_, err := sparmat.ToDense(nil, -1)
	require.ErrorIs(t, err, sparmat.ErrInvalidSize)

	_, err = sparmat.ToDense([]sparmat.Triple{
		{Row: 1, Col: 1, Value: 1},
		{Row: 1, Col: 9, Value: 1},
	}, 3)
	require.ErrorIs(t, err, sparmat.ErrInvalidCoordinate)
	require.ErrorContains(t, err, "triple 1")
}

func TestToDense_MatchesBuild(t *testing.T) {
	// Unique (row,col) pairs: the reference densifier and the sparse
	// structure's own densification must agree cell by cell.
	triples := []sparmat.Triple{
		{Row: 3, Col: 1, Value: 7},
		{Row: 1, Col: 2, Value: 1 + 1i},
		{Row: 2, Col: 3, Value: -3},
		{Row: 2, Col: 1, Value: 2},
		{Row: 1, Col: 1, Value: 8i},
	}

	want, err := sparmat.ToDense(triples, 3)
	require.NoError(t, err)

	m, err := sparmat.Build(triples, 3, sparmat.Replace)
	require.NoError(t, err)
	require.Equal(t, want, m.Dense())
}

func TestNonZero_RowMajor(t *testing.T) {
	dense := [][]complex128{
		{0, 2, 0},
		{1, 0, 0},
		{0, 0, 3i},
	}

	require.Equal(t, []sparmat.Triple{
		{Row: 1, Col: 2, Value: 2},
		{Row: 2, Col: 1, Value: 1},
		{Row: 3, Col: 3, Value: 3i},
	}, sparmat.NonZero(dense))
}

// TestRoundTrip rebuilds a structure from its densified form and checks
// that the chains come out identical: same (row, col, value) sequence
// along every row and column chain.
func TestRoundTrip(t *testing.T) {
	triples := []sparmat.Triple{
		{Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 1, Value: 2},
		{Row: 2, Col: 3, Value: 3},
		{Row: 3, Col: 2, Value: 4},
		{Row: 2, Col: 2, Value: 5},
		{Row: 2, Col: 2, Value: 6}, // collision, Replace keeps 6
		{Row: 3, Col: 1, Value: 7},
		{Row: 1, Col: 1, Value: 8},
	}

	m, err := sparmat.Build(triples, 3, sparmat.Replace)
	require.NoError(t, err)

	rebuilt, err := sparmat.Build(sparmat.NonZero(m.Dense()), 3, sparmat.Replace)
	require.NoError(t, err)

	require.Equal(t, m.ElementCount(), rebuilt.ElementCount())
	requireChainInvariants(t, rebuilt)

	type cell struct {
		row, col int
		value    complex128
	}
	chain := func(es []*sparmat.Element) []cell {
		var out []cell
		for _, e := range es {
			out = append(out, cell{e.Row, e.Col, e.Value})
		}
		return out
	}

	for r := 1; r <= 3; r++ {
		require.Equal(t, chain(m.RowElements(r)), chain(rebuilt.RowElements(r)), "row %d", r)
	}
	for c := 1; c <= 3; c++ {
		require.Equal(t, chain(m.ColElements(c)), chain(rebuilt.ColElements(c)), "column %d", c)
	}
}
