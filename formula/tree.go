package formula

import (
	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

// TreeKind enumerates the variants of the formula tree.
type TreeKind uint8

const (
	KindElement TreeKind = iota + 1
	KindIsotope
	KindSequence
	KindRepeat
	KindCharge
	KindUnit
	KindRadical
	KindResidual
)

// Bracket distinguishes round from square grouping.
type Bracket uint8

const (
	Round Bracket = iota
	Square
)

func (b Bracket) open() rune {
	if b == Square {
		return '['
	}
	return '('
}

func (b Bracket) close() rune {
	if b == Square {
		return ']'
	}
	return ')'
}

// Side is the position of a radical marker relative to its subtree.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// Tree is the recursive formula tree. Nodes are immutable after
// construction; the combinators return fresh nodes and never alias mutable
// state. The constructors maintain three invariants: a Repeat or Charge is
// never directly nested in a node of the same kind, a Sequence is never
// empty and never a singleton, and a Unit never wraps a bare leaf.
type Tree struct {
	Kind     TreeKind
	Element  chem.Element
	Isotope  chem.Isotope
	Children []*Tree // KindSequence
	Child    *Tree   // KindRepeat, KindCharge, KindUnit, KindRadical
	Count    uint32  // KindRepeat
	Charge   int32   // KindCharge
	Bracket  Bracket // KindUnit
	Side     Side    // KindRadical
}

// NewElement returns an element leaf.
func NewElement(e chem.Element) *Tree {
	return &Tree{Kind: KindElement, Element: e}
}

// NewIsotope returns an isotope leaf.
func NewIsotope(iso chem.Isotope) *Tree {
	return &Tree{Kind: KindIsotope, Isotope: iso}
}

// NewResidual returns the residual (R-group) leaf.
func NewResidual() *Tree {
	return &Tree{Kind: KindResidual}
}

// NewSequence concatenates subtrees. An empty sequence is an error and a
// singleton collapses to its sole child.
func NewSequence(children []*Tree) (*Tree, error) {
	switch len(children) {
	case 0:
		return nil, &ParseError{Kind: ParseEmptyUnit}
	case 1:
		return children[0], nil
	}
	return &Tree{Kind: KindSequence, Children: children}, nil
}

// IsLeaf reports whether t is a single atom-like leaf: an element, an
// isotope, or the residual marker.
func (t *Tree) IsLeaf() bool {
	switch t.Kind {
	case KindElement, KindIsotope, KindResidual:
		return true
	}
	return false
}

func errCountOverflow() error {
	return &ParseError{Tok: &TokenError{Sub: &SubtokenError{Kind: SubtokenOverflow}}}
}

// Repeat multiplies t. A chained repeat merges by summing magnitudes
// rather than nesting; a zero count is rejected.
func (t *Tree) Repeat(count uint32) (*Tree, error) {
	if count == 0 {
		return nil, &ParseError{Kind: ParseZeroCount}
	}
	if t.Kind == KindRepeat {
		sum, ok := addCount(t.Count, count)
		if !ok {
			return nil, errCountOverflow()
		}
		return &Tree{Kind: KindRepeat, Child: t.Child, Count: sum}, nil
	}
	if count == 1 {
		return t, nil
	}
	return &Tree{Kind: KindRepeat, Child: t, Count: count}, nil
}

// Charged applies a signed charge. A chained charge merges by summing
// magnitudes; a sum of zero cancels back to the uncharged subtree.
func (t *Tree) Charged(charge int32) (*Tree, error) {
	if charge == 0 {
		return t, nil
	}
	if t.Kind == KindCharge {
		sum, ok := addCharge(t.Charge, charge)
		if !ok {
			return nil, errCountOverflow()
		}
		if sum == 0 {
			return t.Child, nil
		}
		return &Tree{Kind: KindCharge, Child: t.Child, Charge: sum}, nil
	}
	return &Tree{Kind: KindCharge, Child: t, Charge: charge}, nil
}

// Bracketed wraps t in brackets of the given kind. Brackets around a bare
// leaf are elided at construction time.
func (t *Tree) Bracketed(b Bracket) *Tree {
	if t.IsLeaf() {
		return t
	}
	return &Tree{Kind: KindUnit, Child: t, Bracket: b}
}

// Round wraps t in round brackets unless it is a leaf.
func (t *Tree) Round() *Tree { return t.Bracketed(Round) }

// Square wraps t in square brackets unless it is a leaf.
func (t *Tree) Square() *Tree { return t.Bracketed(Square) }

// Radical marks t as a radical on the given side.
func (t *Tree) Radical(side Side) *Tree {
	return &Tree{Kind: KindRadical, Child: t, Side: side}
}

// Equal reports structural equality. It walks an explicit stack so deeply
// nested trees cannot exhaust the call stack.
func (t *Tree) Equal(other *Tree) bool {
	type pair struct{ a, b *Tree }
	stack := []pair{{t, other}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a, b := p.a, p.b
		if a == nil || b == nil {
			if a != b {
				return false
			}
			continue
		}
		if a.Kind != b.Kind {
			return false
		}
		switch a.Kind {
		case KindElement:
			if a.Element != b.Element {
				return false
			}
		case KindIsotope:
			if a.Isotope != b.Isotope {
				return false
			}
		case KindResidual:
			// nothing beyond the kind
		case KindSequence:
			if len(a.Children) != len(b.Children) {
				return false
			}
			for i := range a.Children {
				stack = append(stack, pair{a.Children[i], b.Children[i]})
			}
		case KindRepeat:
			if a.Count != b.Count {
				return false
			}
			stack = append(stack, pair{a.Child, b.Child})
		case KindCharge:
			if a.Charge != b.Charge {
				return false
			}
			stack = append(stack, pair{a.Child, b.Child})
		case KindUnit:
			if a.Bracket != b.Bracket {
				return false
			}
			stack = append(stack, pair{a.Child, b.Child})
		case KindRadical:
			if a.Side != b.Side {
				return false
			}
			stack = append(stack, pair{a.Child, b.Child})
		}
	}
	return true
}

// String renders the tree in canonical notation.
func (t *Tree) String() string {
	return renderTree(t)
}
