package sparmat

import (
	"fmt"
	"io"
)

const printerWidth = 80

// Fprint writes the matrix to w in dense layout, banded so each block of
// columns fits the printer width. With header set it is preceded by a
// summary line.
func (m *Matrix) Fprint(w io.Writer, header bool) error {
	if header {
		if _, err := fmt.Fprintf(w, "MATRIX SUMMARY\n\nSize of matrix = %d x %d with %d elements.\n\n",
			m.Size, m.Size, m.ElementCount()); err != nil {
			return err
		}
	}

	// One complex cell is 20 characters wide, plus 4 for the row label.
	columns := (printerWidth - 4) / 20
	if columns < 1 {
		columns = 1
	}

	dense := m.Dense()

	for startCol := 1; startCol <= m.Size; startCol += columns {
		stopCol := min(startCol+columns-1, m.Size)

		if header {
			if _, err := fmt.Fprintf(w, "Columns %d to %d.\n", startCol, stopCol); err != nil {
				return err
			}
		}

		for r := 1; r <= m.Size; r++ {
			if _, err := fmt.Fprintf(w, "%4d", r); err != nil {
				return err
			}
			for c := startCol; c <= stopCol; c++ {
				v := dense[r-1][c-1]
				if _, err := fmt.Fprintf(w, " %9.3g%+8.3gi", real(v), imag(v)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
