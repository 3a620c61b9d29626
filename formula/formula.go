package formula

import (
	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

// Component is one mixture member: a tree and how many times it occurs.
type Component struct {
	Count uint32
	Tree  *Tree
}

// Formula is the top-level parse result: an insertion-ordered list of
// mixture components plus an optional leading greek descriptor (zero when
// absent). A formula produced by Parse always has at least one component.
type Formula struct {
	Descriptor chem.Greek
	Components []Component
}

// New returns a formula with a single component.
func New(tree *Tree) *Formula {
	return &Formula{Components: []Component{{Count: 1, Tree: tree}}}
}

// add appends a component, summing counts when an identical tree is
// already present.
func (f *Formula) add(count uint32, tree *Tree) error {
	for i := range f.Components {
		if f.Components[i].Tree.Equal(tree) {
			sum, ok := addCount(f.Components[i].Count, count)
			if !ok {
				return errCountOverflow()
			}
			f.Components[i].Count = sum
			return nil
		}
	}
	f.Components = append(f.Components, Component{Count: count, Tree: tree})
	return nil
}

// Mix unions two formulas, summing counts of structurally equal trees.
// The receiver's descriptor wins; f is left untouched.
func (f *Formula) Mix(other *Formula) (*Formula, error) {
	mixed := &Formula{
		Descriptor: f.Descriptor,
		Components: append([]Component(nil), f.Components...),
	}
	for _, c := range other.Components {
		if err := mixed.add(c.Count, c.Tree); err != nil {
			return nil, err
		}
	}
	return mixed, nil
}

// Len returns the number of distinct mixture components.
func (f *Formula) Len() int { return len(f.Components) }

// TotalComponents counts components with multiplicity, so CuSO4.5H2O has
// six: one salt and five waters.
func (f *Formula) TotalComponents() (uint64, bool) {
	var total uint64
	for _, c := range f.Components {
		total += uint64(c.Count)
		if total < uint64(c.Count) {
			return 0, false
		}
	}
	return total, true
}

// Each calls fn once per component occurrence, expanding repeat counts.
// Iteration stops early when fn returns false.
func (f *Formula) Each(fn func(*Tree) bool) {
	for _, c := range f.Components {
		for i := uint32(0); i < c.Count; i++ {
			if !fn(c.Tree) {
				return
			}
		}
	}
}

// Equal reports structural equality of two formulas, descriptor included.
func (f *Formula) Equal(other *Formula) bool {
	if f.Descriptor != other.Descriptor || len(f.Components) != len(other.Components) {
		return false
	}
	for i := range f.Components {
		if f.Components[i].Count != other.Components[i].Count {
			return false
		}
		if !f.Components[i].Tree.Equal(other.Components[i].Tree) {
			return false
		}
	}
	return true
}

// String renders the formula in canonical notation.
func (f *Formula) String() string {
	return Render(f)
}

// MarshalText renders the formula in canonical notation.
func (f *Formula) MarshalText() ([]byte, error) {
	return []byte(Render(f)), nil
}
