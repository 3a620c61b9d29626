package chem

import "fmt"

// Complex is a named shorthand fragment expanding to a fixed sub-formula,
// e.g. Me for methyl (CH3).
type Complex uint8

const (
	Methyl Complex = iota + 1
	Ethyl
	Butyl
	Phenyl
	Benzyl
	Cyclohexyl
	Cyclopentadienyl
)

const maxComplex = Cyclopentadienyl

type complexData struct {
	symbol    string
	name      string
	carbons   uint32
	hydrogens uint32
	charge    int32
}

var complexes = [maxComplex + 1]complexData{
	Methyl:           {"Me", "methyl", 1, 3, 0},
	Ethyl:            {"Et", "ethyl", 2, 5, 0},
	Butyl:            {"Bu", "butyl", 4, 9, 0},
	Phenyl:           {"Ph", "phenyl", 6, 5, 0},
	Benzyl:           {"Bn", "benzyl", 7, 7, 0},
	Cyclohexyl:       {"Cy", "cyclohexyl", 6, 11, 0},
	Cyclopentadienyl: {"Cp", "cyclopentadienyl", 5, 5, -1},
}

var complexIndex = func() map[string]Complex {
	m := make(map[string]Complex, int(maxComplex))
	for c := Methyl; c <= maxComplex; c++ {
		m[complexes[c].symbol] = c
	}
	return m
}()

// ComplexFromSymbol resolves a two-letter digraph such as "Ph" to its
// complex group.
func ComplexFromSymbol(symbol string) (Complex, bool) {
	c, ok := complexIndex[symbol]
	return c, ok
}

// IsValid reports whether c denotes a known complex group.
func (c Complex) IsValid() bool {
	return c >= Methyl && c <= maxComplex
}

// Symbol returns the two-letter digraph, e.g. "Me".
func (c Complex) Symbol() string {
	if !c.IsValid() {
		return fmt.Sprintf("Complex(%d)", uint8(c))
	}
	return complexes[c].symbol
}

// Name returns the group's lowercase name, e.g. "methyl".
func (c Complex) Name() string {
	if !c.IsValid() {
		return fmt.Sprintf("complex(%d)", uint8(c))
	}
	return complexes[c].name
}

// Composition returns the carbon count, hydrogen count and formal charge of
// the expanded fragment.
func (c Complex) Composition() (carbons, hydrogens uint32, charge int32) {
	if !c.IsValid() {
		return 0, 0, 0
	}
	d := complexes[c]
	return d.carbons, d.hydrogens, d.charge
}

func (c Complex) String() string { return c.Symbol() }
