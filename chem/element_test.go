package chem

import (
	"math"
	"testing"
)

func TestElementFromSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   Element
		ok     bool
	}{
		{"H", Hydrogen, true},
		{"He", Helium, true},
		{"C", Carbon, true},
		{"Cl", Chlorine, true},
		{"Co", Cobalt, true},
		{"Cu", Copper, true},
		{"U", Uranium, true},
		{"Og", Oganesson, true},
		{"D", 0, false},
		{"T", 0, false},
		{"R", 0, false},
		{"Xx", 0, false},
		{"h", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, ok := ElementFromSymbol(tt.symbol)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ElementFromSymbol(%q) = %v, %v; want %v, %v", tt.symbol, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestElementTableComplete(t *testing.T) {
	for z := Hydrogen; z <= maxElement; z++ {
		if elements[z].symbol == "" {
			t.Errorf("element %d has no symbol", z)
		}
		if elements[z].weight <= 0 {
			t.Errorf("element %s has no atomic weight", elements[z].symbol)
		}
		back, ok := ElementFromSymbol(z.Symbol())
		if !ok || back != z {
			t.Errorf("symbol %q does not round-trip: got %v, %v", z.Symbol(), back, ok)
		}
	}
}

func TestAtomicWeight(t *testing.T) {
	if got := Hydrogen.AtomicWeight(); math.Abs(got-1.008) > 1e-9 {
		t.Errorf("Hydrogen.AtomicWeight() = %v, want 1.008", got)
	}
	if got := Oxygen.AtomicWeight(); math.Abs(got-15.999) > 1e-9 {
		t.Errorf("Oxygen.AtomicWeight() = %v, want 15.999", got)
	}
	if got := Element(0).AtomicWeight(); got != 0 {
		t.Errorf("invalid element weight = %v, want 0", got)
	}
}

func TestIsNobleGas(t *testing.T) {
	noble := []Element{Helium, Neon, Argon, Krypton, Xenon, Radon, Oganesson}
	for _, e := range noble {
		if !e.IsNobleGas() {
			t.Errorf("%s should be a noble gas", e.Symbol())
		}
	}
	for _, e := range []Element{Hydrogen, Oxygen, Iron, Tennessine} {
		if e.IsNobleGas() {
			t.Errorf("%s should not be a noble gas", e.Symbol())
		}
	}
}
