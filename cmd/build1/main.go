package main

import (
	"fmt"
	"log"
	"os"

	"sparmat"
)

func main() {
	triples := []sparmat.Triple{
		{Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 1, Value: 2},
		{Row: 2, Col: 3, Value: 3},
		{Row: 3, Col: 2, Value: 4},
		{Row: 2, Col: 2, Value: 5},
		{Row: 3, Col: 1, Value: 7},
		{Row: 1, Col: 1, Value: 8},
	}

	m, err := sparmat.Build(triples, 3, sparmat.Replace)
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	// The same cell again, this time accumulating.
	if err := m.Insert(2, 2, 6, sparmat.Add); err != nil {
		log.Fatalf("insert failed: %v", err)
	}

	fmt.Printf("%d triples -> %d elements\n\n", len(triples)+1, m.ElementCount())

	for r := 1; r <= m.Size; r++ {
		fmt.Printf("row %d:", r)
		for _, e := range m.RowElements(r) {
			fmt.Printf("  [id=%d col=%d value=%v]", e.ID, e.Col, e.Value)
		}
		fmt.Println()
	}
	fmt.Println()

	if err := m.Fprint(os.Stdout, true); err != nil {
		log.Fatalf("print failed: %v", err)
	}
}
