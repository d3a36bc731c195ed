// Package ybus assembles the nodal admittance matrix of a power network
// from per-unit bus and branch data, producing (row, col, value) triples
// for the sparmat structure.
package ybus

import (
	"errors"
	"fmt"

	"sparmat"
)

// Sentinel errors for admittance assembly.
var (
	// ErrSize indicates a non-positive bus count.
	ErrSize = errors.New("ybus: bus count must be positive")
	// ErrBusIndex indicates a bus number outside [1, n].
	ErrBusIndex = errors.New("ybus: bus number out of range")
	// ErrZeroImpedance indicates a branch with zero series impedance.
	ErrZeroImpedance = errors.New("ybus: branch series impedance is zero")
)

// Bus carries one bus's shunt admittance in per-unit.
type Bus struct {
	Number      int
	Conductance float64 // shunt G
	Susceptance float64 // shunt B
}

// Branch is one transmission line or transformer in per-unit.
type Branch struct {
	From      int
	To        int
	R         float64 // series resistance
	X         float64 // series reactance
	ChargingB float64 // total line charging susceptance
	TapRatio  float64 // off-nominal tap on the From side; 0 means nominal
}

// Stamps expands buses and branches into individual admittance
// contributions, one triple per stamp. A branch with series admittance
// y = 1/(R+jX) and tap a stamps y/a² plus half the line charging on the
// From diagonal, y plus half the charging on the To diagonal, and −y/a
// on both off-diagonals; a bus shunt stamps G+jB on its diagonal.
// Contributions to the same cell are left for the caller to accumulate.
func Stamps(buses []Bus, branches []Branch, n int) ([]sparmat.Triple, error) {
	if n <= 0 {
		return nil, fmt.Errorf("bus count %d: %w", n, ErrSize)
	}

	triples := make([]sparmat.Triple, 0, 4*len(branches)+len(buses))

	for i, br := range branches {
		if br.From < 1 || br.From > n || br.To < 1 || br.To > n {
			return nil, fmt.Errorf("branch %d (%d-%d): %w", i, br.From, br.To, ErrBusIndex)
		}
		if br.R == 0 && br.X == 0 {
			return nil, fmt.Errorf("branch %d (%d-%d): %w", i, br.From, br.To, ErrZeroImpedance)
		}

		series := 1 / complex(br.R, br.X)
		charging := complex(0, br.ChargingB/2)
		a := br.TapRatio
		if a == 0 {
			a = 1
		}

		triples = append(triples,
			sparmat.Triple{Row: br.From, Col: br.From, Value: series/complex(a*a, 0) + charging},
			sparmat.Triple{Row: br.To, Col: br.To, Value: series + charging},
			sparmat.Triple{Row: br.From, Col: br.To, Value: -series / complex(a, 0)},
			sparmat.Triple{Row: br.To, Col: br.From, Value: -series / complex(a, 0)},
		)
	}

	for i, b := range buses {
		if b.Number < 1 || b.Number > n {
			return nil, fmt.Errorf("bus %d (number %d): %w", i, b.Number, ErrBusIndex)
		}
		triples = append(triples, sparmat.Triple{
			Row:   b.Number,
			Col:   b.Number,
			Value: complex(b.Conductance, b.Susceptance),
		})
	}

	return triples, nil
}

// Assemble builds the dense n×n admittance matrix by accumulating every
// stamp into its cell.
func Assemble(buses []Bus, branches []Branch, n int) ([][]complex128, error) {
	triples, err := Stamps(buses, branches, n)
	if err != nil {
		return nil, err
	}

	dense := make([][]complex128, n)
	for i := range dense {
		dense[i] = make([]complex128, n)
	}
	for _, t := range triples {
		dense[t.Row-1][t.Col-1] += t.Value
	}

	return dense, nil
}

// Sparse assembles the admittance matrix directly into the sparse
// structure. Stamping is accumulation, so the build runs in Add mode.
func Sparse(buses []Bus, branches []Branch, n int) (*sparmat.Matrix, error) {
	triples, err := Stamps(buses, branches, n)
	if err != nil {
		return nil, err
	}
	return sparmat.Build(triples, n, sparmat.Add)
}
