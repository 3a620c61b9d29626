package formula

import (
	"strconv"
	"strings"
)

// The renderer is total: any well-formed tree renders without error, using
// the canonical glyph for every class the classifier folds look-alikes
// onto. It walks an explicit work stack so nesting depth never translates
// into call-stack depth.

var subscriptDigitRunes = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}
var superscriptDigitRunes = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func subscriptNumber(n uint32) string {
	var b strings.Builder
	for _, d := range strconv.FormatUint(uint64(n), 10) {
		b.WriteRune(subscriptDigitRunes[d-'0'])
	}
	return b.String()
}

func superscriptNumber(n uint32) string {
	var b strings.Builder
	for _, d := range strconv.FormatUint(uint64(n), 10) {
		b.WriteRune(superscriptDigitRunes[d-'0'])
	}
	return b.String()
}

// Render produces the canonical text of a formula: the greek descriptor
// with its hyphen, then the components joined by dots, each prefixed by
// its count in baseline digits unless that count is one.
func Render(f *Formula) string {
	var b strings.Builder
	if f.Descriptor.IsValid() {
		b.WriteRune(f.Descriptor.Rune())
		b.WriteByte('-')
	}
	for i, c := range f.Components {
		if i > 0 {
			b.WriteByte('.')
		}
		if c.Count != 1 {
			b.WriteString(strconv.FormatUint(uint64(c.Count), 10))
		}
		writeTree(&b, c.Tree)
	}
	return b.String()
}

func renderTree(t *Tree) string {
	var b strings.Builder
	writeTree(&b, t)
	return b.String()
}

// renderFrame is one pending emission: either a subtree or a literal.
type renderFrame struct {
	node *Tree
	text string
}

func writeTree(b *strings.Builder, t *Tree) {
	stack := []renderFrame{{node: t}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil {
			b.WriteString(f.text)
			continue
		}
		n := f.node
		switch n.Kind {
		case KindElement:
			b.WriteString(n.Element.Symbol())
		case KindIsotope:
			if s, ok := n.Isotope.Shorthand(); ok {
				b.WriteString(s)
			} else {
				b.WriteByte('[')
				b.WriteString(superscriptNumber(uint32(n.Isotope.MassNumber)))
				b.WriteString(n.Isotope.Element.Symbol())
				b.WriteByte(']')
			}
		case KindResidual:
			b.WriteByte('R')
		case KindSequence:
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, renderFrame{node: n.Children[i]})
			}
		case KindRepeat:
			if n.Count != 1 {
				stack = append(stack, renderFrame{text: subscriptNumber(n.Count)})
			}
			stack = append(stack, renderFrame{node: n.Child})
		case KindCharge:
			suffix := ""
			magnitude := int64(n.Charge)
			sign := "⁺"
			if magnitude < 0 {
				magnitude = -magnitude
				sign = "⁻"
			}
			if magnitude != 1 {
				suffix = superscriptNumber(uint32(magnitude))
			}
			stack = append(stack, renderFrame{text: suffix + sign})
			stack = append(stack, renderFrame{node: n.Child})
		case KindUnit:
			stack = append(stack, renderFrame{text: string(n.Bracket.close())})
			stack = append(stack, renderFrame{node: n.Child})
			stack = append(stack, renderFrame{text: string(n.Bracket.open())})
		case KindRadical:
			if n.Side == SideLeft {
				stack = append(stack, renderFrame{node: n.Child})
				stack = append(stack, renderFrame{text: "·"})
			} else {
				stack = append(stack, renderFrame{text: "·"})
				stack = append(stack, renderFrame{node: n.Child})
			}
		}
	}
}
