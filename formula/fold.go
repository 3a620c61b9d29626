package formula

import (
	"math"

	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

// Derived quantities are post-order folds over the finished tree. They all
// walk an explicit stack carrying the product of enclosing repeat counts,
// so neither nesting depth nor repeat nesting can blow the call stack or
// silently wrap.

type foldFrame struct {
	node *Tree
	mult uint64
}

var errFoldOverflow = errCountOverflow()

// Counts is the multiset of leaves in a tree or formula. Atoms written as
// explicit isotopes are tallied separately from plain elements.
type Counts struct {
	Elements  map[chem.Element]uint64
	Isotopes  map[chem.Isotope]uint64
	Residuals uint64
}

func newCounts() *Counts {
	return &Counts{
		Elements: make(map[chem.Element]uint64),
		Isotopes: make(map[chem.Isotope]uint64),
	}
}

func addU64(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

func mulU64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxUint64/b {
		return 0, false
	}
	return a * b, true
}

func (c *Counts) accumulate(t *Tree, mult uint64) error {
	stack := []foldFrame{{t, mult}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node
		switch n.Kind {
		case KindElement:
			sum, ok := addU64(c.Elements[n.Element], f.mult)
			if !ok {
				return errFoldOverflow
			}
			c.Elements[n.Element] = sum
		case KindIsotope:
			sum, ok := addU64(c.Isotopes[n.Isotope], f.mult)
			if !ok {
				return errFoldOverflow
			}
			c.Isotopes[n.Isotope] = sum
		case KindResidual:
			sum, ok := addU64(c.Residuals, f.mult)
			if !ok {
				return errFoldOverflow
			}
			c.Residuals = sum
		case KindSequence:
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, foldFrame{n.Children[i], f.mult})
			}
		case KindRepeat:
			m, ok := mulU64(f.mult, uint64(n.Count))
			if !ok {
				return errFoldOverflow
			}
			stack = append(stack, foldFrame{n.Child, m})
		case KindCharge, KindUnit, KindRadical:
			stack = append(stack, foldFrame{n.Child, f.mult})
		}
	}
	return nil
}

// ElementCount returns how many atoms of e the tree contains, counting
// isotopes of e as well.
func (t *Tree) ElementCount(e chem.Element) (uint64, error) {
	c, err := t.Counts()
	if err != nil {
		return 0, err
	}
	total := c.Elements[e]
	for iso, n := range c.Isotopes {
		if iso.Element == e {
			total, _ = addU64(total, n)
		}
	}
	return total, nil
}

// Counts tallies every leaf of the tree.
func (t *Tree) Counts() (*Counts, error) {
	c := newCounts()
	if err := c.accumulate(t, 1); err != nil {
		return nil, err
	}
	return c, nil
}

// Counts tallies every leaf across all mixture components, weighted by
// their mixture counts.
func (f *Formula) Counts() (*Counts, error) {
	c := newCounts()
	for _, comp := range f.Components {
		if err := c.accumulate(comp.Tree, uint64(comp.Count)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// TotalCharge sums all charge nodes, each weighted by the product of its
// enclosing repeat counts.
func (t *Tree) TotalCharge() (int64, error) {
	return treeCharge(t, 1)
}

// TotalCharge sums component charges weighted by mixture counts.
func (f *Formula) TotalCharge() (int64, error) {
	var total int64
	for _, comp := range f.Components {
		q, err := treeCharge(comp.Tree, uint64(comp.Count))
		if err != nil {
			return 0, err
		}
		next := total + q
		if (q > 0 && next < total) || (q < 0 && next > total) {
			return 0, errFoldOverflow
		}
		total = next
	}
	return total, nil
}

func treeCharge(t *Tree, mult uint64) (int64, error) {
	var total int64
	stack := []foldFrame{{t, mult}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node
		switch n.Kind {
		case KindSequence:
			for _, child := range n.Children {
				stack = append(stack, foldFrame{child, f.mult})
			}
		case KindRepeat:
			m, ok := mulU64(f.mult, uint64(n.Count))
			if !ok {
				return 0, errFoldOverflow
			}
			stack = append(stack, foldFrame{n.Child, m})
		case KindCharge:
			if f.mult > math.MaxInt64/uint64(absInt32(n.Charge)+1) {
				return 0, errFoldOverflow
			}
			q := int64(n.Charge) * int64(f.mult)
			next := total + q
			if (q > 0 && next < total) || (q < 0 && next > total) {
				return 0, errFoldOverflow
			}
			total = next
			stack = append(stack, foldFrame{n.Child, f.mult})
		case KindUnit, KindRadical:
			stack = append(stack, foldFrame{n.Child, f.mult})
		}
	}
	return total, nil
}

func absInt32(v int32) uint64 {
	if v < 0 {
		return uint64(-int64(v))
	}
	return uint64(v)
}

// MolarMass returns the mass of the tree in daltons: standard atomic
// weights for plain element leaves, exact nuclide masses for isotope
// leaves. Residual leaves contribute nothing.
func (t *Tree) MolarMass() (float64, error) {
	c, err := t.Counts()
	if err != nil {
		return 0, err
	}
	return c.mass(), nil
}

// MolarMass sums component masses weighted by mixture counts.
func (f *Formula) MolarMass() (float64, error) {
	c, err := f.Counts()
	if err != nil {
		return 0, err
	}
	return c.mass(), nil
}

func (c *Counts) mass() float64 {
	var m float64
	for e, n := range c.Elements {
		m += float64(n) * e.AtomicWeight()
	}
	for iso, n := range c.Isotopes {
		m += float64(n) * iso.Mass()
	}
	return m
}

// ContainsNobleGas reports whether any leaf is a group 18 element.
func (f *Formula) ContainsNobleGas() bool {
	for _, comp := range f.Components {
		for _, e := range leafElements(comp.Tree) {
			if e.IsNobleGas() {
				return true
			}
		}
	}
	return false
}

// IsHillOrdered reports whether every component lists its elements in Hill
// order.
func (f *Formula) IsHillOrdered() bool {
	return checkHillOrder(f) == nil
}
