package formula

import (
	"errors"
	"math"
	"testing"

	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

func mustRepeat(t *testing.T, tree *Tree, n uint32) *Tree {
	t.Helper()
	r, err := tree.Repeat(n)
	if err != nil {
		t.Fatalf("Repeat(%d) failed: %v", n, err)
	}
	return r
}

func mustCharged(t *testing.T, tree *Tree, q int32) *Tree {
	t.Helper()
	c, err := tree.Charged(q)
	if err != nil {
		t.Fatalf("Charged(%d) failed: %v", q, err)
	}
	return c
}

func TestSequenceCollapse(t *testing.T) {
	h := NewElement(chem.Hydrogen)
	single, err := NewSequence([]*Tree{h})
	if err != nil {
		t.Fatal(err)
	}
	if single != h {
		t.Error("singleton sequence should collapse to its child")
	}

	if _, err := NewSequence(nil); err == nil {
		t.Error("empty sequence should fail")
	}

	o := NewElement(chem.Oxygen)
	seq, err := NewSequence([]*Tree{h, o})
	if err != nil {
		t.Fatal(err)
	}
	if seq.Kind != KindSequence || len(seq.Children) != 2 {
		t.Errorf("sequence = %+v", seq)
	}
}

func TestRepeatMergesBySumming(t *testing.T) {
	h := NewElement(chem.Hydrogen)
	r2 := mustRepeat(t, h, 2)
	r5 := mustRepeat(t, r2, 3)
	if r5.Kind != KindRepeat || r5.Count != 5 || r5.Child != h {
		t.Errorf("chained repeat = %+v, want H repeated 5", r5)
	}
}

func TestRepeatOneCollapses(t *testing.T) {
	h := NewElement(chem.Hydrogen)
	if got := mustRepeat(t, h, 1); got != h {
		t.Error("Repeat(1) should return the tree unchanged")
	}
}

func TestRepeatZeroFails(t *testing.T) {
	_, err := NewElement(chem.Hydrogen).Repeat(0)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != ParseZeroCount {
		t.Errorf("error = %v, want zero count", err)
	}
}

func TestRepeatOverflow(t *testing.T) {
	h := NewElement(chem.Hydrogen)
	big := mustRepeat(t, h, math.MaxUint32)
	if _, err := big.Repeat(1); err == nil {
		t.Error("summing past MaxUint32 should fail")
	}
}

func TestChargeMergesAndCancels(t *testing.T) {
	c := NewElement(chem.Carbon)
	plus2 := mustCharged(t, c, 2)
	plus4 := mustCharged(t, plus2, 2)
	if plus4.Kind != KindCharge || plus4.Charge != 4 || plus4.Child != c {
		t.Errorf("merged charge = %+v, want C charged +4", plus4)
	}

	neutral := mustCharged(t, plus2, -2)
	if neutral != c {
		t.Error("charges summing to zero should cancel back to the subtree")
	}

	if got := mustCharged(t, c, 0); got != c {
		t.Error("Charged(0) should be the identity")
	}
}

func TestBracketElision(t *testing.T) {
	h := NewElement(chem.Hydrogen)
	if h.Round() != h || h.Square() != h {
		t.Error("brackets around a bare leaf should be elided")
	}
	iso := NewIsotope(chem.Deuterium)
	if iso.Square() != iso {
		t.Error("brackets around an isotope leaf should be elided")
	}
	res := NewResidual()
	if res.Round() != res {
		t.Error("brackets around a residual leaf should be elided")
	}

	seq, _ := NewSequence([]*Tree{h, NewElement(chem.Oxygen)})
	unit := seq.Round()
	if unit.Kind != KindUnit || unit.Bracket != Round {
		t.Errorf("unit = %+v", unit)
	}
}

func TestIsLeaf(t *testing.T) {
	if !NewElement(chem.Oxygen).IsLeaf() || !NewIsotope(chem.Tritium).IsLeaf() || !NewResidual().IsLeaf() {
		t.Error("element, isotope and residual are leaves")
	}
	seq, _ := NewSequence([]*Tree{NewElement(chem.Hydrogen), NewElement(chem.Oxygen)})
	if seq.IsLeaf() {
		t.Error("a sequence is not a leaf")
	}
	rep := mustRepeat(t, NewElement(chem.Hydrogen), 2)
	if rep.IsLeaf() {
		t.Error("a repeat is not a leaf")
	}
}

func TestTreeEqual(t *testing.T) {
	a, err := ParseChemical("CuSO4")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseChemical("CuSO4")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Components[0].Tree.Equal(b.Components[0].Tree) {
		t.Error("identical parses should be equal")
	}
	c, err := ParseChemical("CuSO3")
	if err != nil {
		t.Fatal(err)
	}
	if a.Components[0].Tree.Equal(c.Components[0].Tree) {
		t.Error("different counts should not be equal")
	}

	d := NewIsotope(chem.Deuterium)
	if d.Equal(NewElement(chem.Hydrogen)) {
		t.Error("isotope and element leaves differ")
	}
	if !d.Equal(NewIsotope(chem.Deuterium)) {
		t.Error("equal isotopes should compare equal")
	}
	left := NewElement(chem.Oxygen).Radical(SideLeft)
	right := NewElement(chem.Oxygen).Radical(SideRight)
	if left.Equal(right) {
		t.Error("radical side matters")
	}
}
