package sparmat

// None marks the end of a row or column chain, and an empty chain head.
const None = -1

// Mode selects how an insertion resolves against an existing element at
// the same (row, col).
type Mode uint8

const (
	// Replace overwrites the existing element's value with the candidate's.
	Replace Mode = iota + 1
	// Add accumulates the candidate's value into the existing element.
	Add
)

func (mode Mode) valid() bool {
	return mode == Replace || mode == Add
}

func (mode Mode) String() string {
	switch mode {
	case Replace:
		return "replace"
	case Add:
		return "add"
	}
	return "unknown"
}

// Triple is one non-zero entry of a sparse matrix. Row and Col are
// 1-based.
type Triple struct {
	Row   int
	Col   int
	Value complex128
}

// Element is one stored non-zero entry. ID equals the element's 1-based
// position in the store at creation time and is never reassigned, even
// when later insertions collide into it. NextInRow and NextInCol hold
// element ids, or None at the end of a chain.
type Element struct {
	ID        int
	Value     complex128
	Row       int
	Col       int
	NextInRow int
	NextInCol int
}

// Matrix is an N×N sparse matrix: a flat element store addressed by id
// plus head vectors locating the first element of each row and column
// chain. Following NextInRow from FirstInRow[r] visits row r in strictly
// increasing column order; following NextInCol from FirstInCol[c] visits
// column c in strictly increasing row order. At most one element exists
// per (row, col).
//
// A Matrix is built single-threaded through Insert or Build and is not
// safe for concurrent mutation; the finished structure is read-only for
// consumers.
type Matrix struct {
	Size int // matrix dimension

	FirstInRow []int // head element id of each row chain [1...Size]
	FirstInCol []int // head element id of each column chain [1...Size]

	elements []Element // element id i lives at elements[i-1]
}
