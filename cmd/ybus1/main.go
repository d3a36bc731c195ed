package main

import (
	"fmt"
	"log"
	"os"

	"sparmat/ybus"
)

// Three-bus example system: two lines and a transformer, one shunt
// capacitor, all in per-unit.
func main() {
	buses := []ybus.Bus{
		{Number: 3, Susceptance: 0.05},
	}
	branches := []ybus.Branch{
		{From: 1, To: 2, R: 0.02, X: 0.06, ChargingB: 0.06},
		{From: 1, To: 3, R: 0.08, X: 0.24, ChargingB: 0.05},
		{From: 2, To: 3, R: 0.06, X: 0.18, ChargingB: 0.04, TapRatio: 0.98},
	}

	m, err := ybus.Sparse(buses, branches, 3)
	if err != nil {
		log.Fatalf("assembly failed: %v", err)
	}

	fmt.Printf("Y-bus built with %d non-zero admittances\n\n", m.ElementCount())

	if err := m.Fprint(os.Stdout, true); err != nil {
		log.Fatalf("print failed: %v", err)
	}
}
