package formula

import (
	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

// checkHillOrder verifies that every mixture component lists its elements
// in Hill order: carbon first when present, hydrogen directly after it,
// then the remaining elements strictly alphabetically by symbol. Without
// carbon the whole list is strictly alphabetical, hydrogen included.
// Residual leaves do not participate in the ordering.
func checkHillOrder(f *Formula) *ParseError {
	for _, c := range f.Components {
		if perr := checkTreeHillOrder(c.Tree); perr != nil {
			return perr
		}
	}
	return nil
}

func checkTreeHillOrder(t *Tree) *ParseError {
	elems := leafElements(t)
	if len(elems) == 0 {
		return nil
	}

	// collapse adjacent runs of one element (C6H12O6 reads C,H,O)
	collapsed := elems[:1]
	for _, e := range elems[1:] {
		if e != collapsed[len(collapsed)-1] {
			collapsed = append(collapsed, e)
		}
	}

	hasCarbon := false
	for _, e := range collapsed {
		if e == chem.Carbon {
			hasCarbon = true
			break
		}
	}

	if !hasCarbon {
		return checkAlphabetical(collapsed)
	}
	if collapsed[0] != chem.Carbon {
		return &ParseError{Kind: ParseNotHillOrdered, Element: collapsed[0]}
	}
	rest := collapsed[1:]
	if len(rest) > 0 && rest[0] == chem.Hydrogen {
		rest = rest[1:]
	}
	for _, e := range rest {
		if e == chem.Carbon || e == chem.Hydrogen {
			return &ParseError{Kind: ParseNotHillOrdered, Element: e}
		}
	}
	return checkAlphabetical(rest)
}

func checkAlphabetical(elems []chem.Element) *ParseError {
	for i := 1; i < len(elems); i++ {
		if elems[i].Symbol() <= elems[i-1].Symbol() {
			return &ParseError{Kind: ParseNotHillOrdered, Element: elems[i]}
		}
	}
	return nil
}

// leafElements collects the element of every element/isotope leaf in
// left-to-right order, using an explicit stack.
func leafElements(t *Tree) []chem.Element {
	var elems []chem.Element
	stack := []*Tree{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.Kind {
		case KindElement:
			elems = append(elems, n.Element)
		case KindIsotope:
			elems = append(elems, n.Isotope.Element)
		case KindSequence:
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, n.Children[i])
			}
		case KindRepeat, KindCharge, KindUnit, KindRadical:
			stack = append(stack, n.Child)
		}
	}
	return elems
}
