package formula

import (
	"math"

	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

// maxDepth bounds bracket/radical nesting so adversarial input cannot
// exhaust the call stack.
const maxDepth = 64

// Parse reads a formula in the given dialect.
func Parse(input string, dialect Dialect) (*Formula, error) {
	p := &parser{dialect: dialect, tokens: newTokenReader(input)}
	return p.parse()
}

// ParseChemical parses the general compound-database notation.
func ParseChemical(input string) (*Formula, error) { return Parse(input, Chemical) }

// ParseInChI parses the strict Hill-ordered InChI formula layer.
func ParseInChI(input string) (*Formula, error) { return Parse(input, InChI) }

// ParseMineral parses mineral notation with polymorph prefixes.
func ParseMineral(input string) (*Formula, error) { return Parse(input, Mineral) }

// ParseMarkush parses the residual-bearing Markush notation.
func ParseMarkush(input string) (*Formula, error) { return Parse(input, Markush) }

// terminator tells a unit parse what ends it: the matching close bracket,
// or a mixture boundary (dot or end of input).
type terminator uint8

const (
	termMixture terminator = iota
	termRound
	termSquare
)

type parser struct {
	dialect Dialect
	tokens  *tokenReader
	depth   int
}

func unexpected(tok Token) *ParseError {
	t := tok
	return &ParseError{Kind: ParseUnexpectedToken, Token: &t}
}

func (p *parser) parse() (*Formula, error) {
	f := &Formula{}
	tok, ok, err := p.tokens.peek()
	if err != nil {
		return nil, wrapTokenError(err)
	}
	if ok && tok.Kind == TokenGreek {
		if !p.dialect.allowsGreek() {
			return nil, unexpected(tok)
		}
		p.tokens.next()
		f.Descriptor = tok.Greek
	}
	for {
		tok, ok, err := p.tokens.peek()
		if err != nil {
			return nil, wrapTokenError(err)
		}
		if !ok {
			if len(f.Components) == 0 {
				return nil, &ParseError{Kind: ParseEmptyFormula}
			}
			// dangling mixture separator
			return nil, &ParseError{Kind: ParseEmptyUnit}
		}
		count := uint32(1)
		if tok.Kind == TokenCount && tok.Script == Baseline {
			p.tokens.next()
			if tok.Magnitude == 0 {
				return nil, &ParseError{Kind: ParseZeroCount}
			}
			count = tok.Magnitude
		}
		tree, perr := p.parseUnit(termMixture)
		if perr != nil {
			return nil, perr
		}
		if err := f.add(count, tree); err != nil {
			return nil, err
		}
		sep, ok, err := p.tokens.next()
		if err != nil {
			return nil, wrapTokenError(err)
		}
		if !ok {
			break
		}
		if sep.Kind != TokenDot {
			return nil, &ParseError{Kind: ParseTrailingInput, Token: &sep}
		}
	}
	if p.dialect.requiresHill() {
		if perr := checkHillOrder(f); perr != nil {
			return nil, perr
		}
	}
	return f, nil
}

// parseUnit consumes tokens until the given terminator and builds one
// subtree. Close brackets are consumed; a mixture dot is left for the
// driver.
func (p *parser) parseUnit(term terminator) (*Tree, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, &ParseError{Kind: ParseTooDeep}
	}

	var seq []*Tree
	lastWasCharge := false
	for {
		tok, ok, err := p.tokens.peek()
		if err != nil {
			return nil, wrapTokenError(err)
		}
		if !ok {
			switch term {
			case termRound:
				return nil, &ParseError{Kind: ParseMissingCloseBracket, Bracket: Round}
			case termSquare:
				return nil, &ParseError{Kind: ParseMissingCloseBracket, Bracket: Square}
			}
			return p.seal(seq)
		}

		switch tok.Kind {
		case TokenDot:
			if term != termMixture {
				return nil, unexpected(tok)
			}
			return p.seal(seq)

		case TokenCloseRound, TokenCloseSquare:
			matches := (tok.Kind == TokenCloseRound && term == termRound) ||
				(tok.Kind == TokenCloseSquare && term == termSquare)
			if !matches || len(seq) == 0 {
				return nil, unexpected(tok)
			}
			p.tokens.next()
			return p.seal(seq)

		case TokenElement:
			p.tokens.next()
			nodes, perr := p.parseElementFollow(tok.Element)
			if perr != nil {
				return nil, perr
			}
			seq = append(seq, nodes...)
			lastWasCharge = false

		case TokenIsotope:
			p.tokens.next()
			seq = append(seq, NewIsotope(tok.Isotope))
			lastWasCharge = false

		case TokenComplex:
			p.tokens.next()
			seq = append(seq, expandComplex(tok.Complex))
			lastWasCharge = false

		case TokenResidual:
			p.tokens.next()
			if !p.dialect.allowsResidual() {
				return nil, &ParseError{Kind: ParseResidualNotSupported}
			}
			seq = append(seq, NewResidual())
			lastWasCharge = false

		case TokenCharge:
			p.tokens.next()
			if len(seq) == 0 {
				return nil, &ParseError{Kind: ParseEmptyUnit}
			}
			if tok.Magnitude == 0 {
				return nil, &ParseError{Kind: ParseZeroCharge}
			}
			if tok.Magnitude > math.MaxInt32 {
				return nil, errCountOverflow()
			}
			folded, perr := NewSequence(seq)
			if perr != nil {
				return nil, perr
			}
			charged, cerr := folded.Charged(int32(tok.Sign) * int32(tok.Magnitude))
			if cerr != nil {
				return nil, cerr
			}
			seq = []*Tree{charged}
			lastWasCharge = true

		case TokenCount:
			p.tokens.next()
			if tok.Magnitude == 0 {
				return nil, &ParseError{Kind: ParseZeroCount}
			}
			if len(seq) > 0 {
				last := seq[len(seq)-1]
				if last.Kind == KindRadical {
					return nil, unexpected(tok)
				}
				rep, rerr := last.Repeat(tok.Magnitude)
				if rerr != nil {
					return nil, rerr
				}
				seq[len(seq)-1] = rep
			} else {
				// the 13C spelling: the magnitude is a mass number for
				// the element that must follow
				leaf, perr := p.parseIsotopePrefix(tok.Magnitude)
				if perr != nil {
					return nil, perr
				}
				seq = append(seq, leaf)
			}
			lastWasCharge = false

		case TokenRadical:
			p.tokens.next()
			if lastWasCharge {
				return nil, unexpected(tok)
			}
			if len(seq) == 0 {
				sub, perr := p.parseUnit(term)
				if perr != nil {
					return nil, perr
				}
				return sub.Radical(SideLeft), nil
			}
			folded, perr := NewSequence(seq)
			if perr != nil {
				return nil, perr
			}
			seq = []*Tree{folded.Radical(SideRight)}

		case TokenOpenRound:
			p.tokens.next()
			sub, perr := p.parseUnit(termRound)
			if perr != nil {
				return nil, perr
			}
			seq = append(seq, sub.Round())
			lastWasCharge = false

		case TokenOpenSquare:
			p.tokens.next()
			sub, perr := p.parseUnit(termSquare)
			if perr != nil {
				return nil, perr
			}
			seq = append(seq, sub.Square())
			lastWasCharge = false

		case TokenGreek:
			return nil, &ParseError{Kind: ParseUnexpectedGreek}

		default:
			return nil, unexpected(tok)
		}
	}
}

func (p *parser) seal(seq []*Tree) (*Tree, error) {
	tree, err := NewSequence(seq)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// parseElementFollow handles an element that may be followed by a square
// bracket. "C[13]" combines into one isotope leaf; any other bracket
// content is an ordinary sub-unit, with the tokens already consumed
// replayed into the recursive call.
func (p *parser) parseElementFollow(el chem.Element) ([]*Tree, error) {
	next, ok, err := p.tokens.peek()
	if err != nil {
		return nil, wrapTokenError(err)
	}
	if !ok || next.Kind != TokenOpenSquare {
		return []*Tree{NewElement(el)}, nil
	}
	p.tokens.next()
	mag, ok, err := p.tokens.peek()
	if err != nil {
		return nil, wrapTokenError(err)
	}
	if ok && mag.Kind == TokenCount {
		p.tokens.next()
		closing, ok, err := p.tokens.peek()
		if err != nil {
			return nil, wrapTokenError(err)
		}
		if ok && closing.Kind == TokenCloseSquare {
			p.tokens.next()
			iso, terr := resolveIsotope(el, mag.Magnitude)
			if terr != nil {
				return nil, &ParseError{Tok: terr}
			}
			return []*Tree{NewIsotope(iso)}, nil
		}
		p.tokens.pushBack(mag)
	}
	sub, perr := p.parseUnit(termSquare)
	if perr != nil {
		return nil, perr
	}
	return []*Tree{NewElement(el), sub.Square()}, nil
}

// parseIsotopePrefix consumes the element a bare leading magnitude belongs
// to, as in [13C].
func (p *parser) parseIsotopePrefix(massNumber uint32) (*Tree, error) {
	tok, ok, err := p.tokens.next()
	if err != nil {
		return nil, wrapTokenError(err)
	}
	if !ok || tok.Kind != TokenElement {
		return nil, &ParseError{Tok: &TokenError{Kind: TokenCannotAssignMass, MassNumber: massNumber}}
	}
	iso, terr := resolveIsotope(tok.Element, massNumber)
	if terr != nil {
		return nil, &ParseError{Tok: terr}
	}
	return NewIsotope(iso), nil
}

// expandComplex builds the fixed fragment tree of a complex group:
// carbons then hydrogens, bracketed, with cyclopentadienyl carrying its
// formal -1 charge on the outside.
func expandComplex(c chem.Complex) *Tree {
	carbons, hydrogens, charge := c.Composition()
	cNode, _ := NewElement(chem.Carbon).Repeat(carbons)
	hNode, _ := NewElement(chem.Hydrogen).Repeat(hydrogens)
	seq, _ := NewSequence([]*Tree{cNode, hNode})
	t := seq.Round()
	if charge != 0 {
		t, _ = t.Charged(charge)
	}
	return t
}
