package formula

import (
	"fmt"

	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

// TokenKind enumerates the semantic tokens consumed by the parser.
type TokenKind uint8

const (
	TokenElement TokenKind = iota + 1
	TokenIsotope
	TokenComplex
	TokenResidual
	TokenCharge
	TokenCount
	TokenRadical
	TokenOpenRound
	TokenCloseRound
	TokenOpenSquare
	TokenCloseSquare
	TokenDot
	TokenGreek
)

// Token is a fully disambiguated lexical unit. A Charge carries its signed
// direction and absolute magnitude; a Count keeps the typesetting it was
// written in so the parser can reinterpret superscript counts contextually.
type Token struct {
	Kind      TokenKind
	Element   chem.Element
	Isotope   chem.Isotope
	Complex   chem.Complex
	Sign      int8
	Magnitude uint32
	Script    Typesetting
	Greek     chem.Greek
}

func (t Token) String() string {
	switch t.Kind {
	case TokenElement:
		return fmt.Sprintf("element %s", t.Element.Symbol())
	case TokenIsotope:
		return fmt.Sprintf("isotope %s", t.Isotope)
	case TokenComplex:
		return fmt.Sprintf("group %s", t.Complex.Symbol())
	case TokenResidual:
		return "residual R"
	case TokenCharge:
		if t.Sign < 0 {
			return fmt.Sprintf("charge -%d", t.Magnitude)
		}
		return fmt.Sprintf("charge +%d", t.Magnitude)
	case TokenCount:
		return fmt.Sprintf("count %d", t.Magnitude)
	case TokenRadical:
		return "radical ·"
	case TokenOpenRound:
		return "bracket ("
	case TokenCloseRound:
		return "bracket )"
	case TokenOpenSquare:
		return "bracket ["
	case TokenCloseSquare:
		return "bracket ]"
	case TokenDot:
		return "separator ."
	case TokenGreek:
		return fmt.Sprintf("greek letter %c", t.Greek.Rune())
	default:
		return "invalid token"
	}
}

// tokenReader elevates subtokens to tokens by one-subtoken lookahead.
// A superscript magnitude becomes a charge when a superscript sign follows,
// an isotope when an element follows, and a bare superscript count
// otherwise; end of input directly after it is an error. A baseline sign
// absorbs a directly following baseline magnitude into one charge. The
// parser may push tokens back to replay them into a recursive call.
type tokenReader struct {
	subs   *subtokenReader
	pushed []Token
	ahead  *Token
}

func newTokenReader(input string) *tokenReader {
	return &tokenReader{subs: newSubtokenReader(input)}
}

func (r *tokenReader) pushBack(t Token) {
	if r.ahead != nil {
		r.pushed = append(r.pushed, *r.ahead)
		r.ahead = nil
	}
	r.pushed = append(r.pushed, t)
}

func (r *tokenReader) next() (Token, bool, error) {
	if r.ahead != nil {
		t := *r.ahead
		r.ahead = nil
		return t, true, nil
	}
	if n := len(r.pushed); n > 0 {
		t := r.pushed[n-1]
		r.pushed = r.pushed[:n-1]
		return t, true, nil
	}
	return r.read()
}

func (r *tokenReader) peek() (Token, bool, error) {
	if r.ahead == nil {
		t, ok, err := r.next()
		if err != nil || !ok {
			return t, ok, err
		}
		r.ahead = &t
	}
	return *r.ahead, true, nil
}

func (r *tokenReader) read() (Token, bool, error) {
	s, ok, serr := r.subs.next()
	if serr != nil {
		return Token{}, false, serr
	}
	if !ok {
		return Token{}, false, nil
	}
	switch s.Kind {
	case SubElement:
		return Token{Kind: TokenElement, Element: s.Element}, true, nil
	case SubIsotope:
		return Token{Kind: TokenIsotope, Isotope: s.Isotope}, true, nil
	case SubComplex:
		return Token{Kind: TokenComplex, Complex: s.Complex}, true, nil
	case SubResidual:
		return Token{Kind: TokenResidual}, true, nil
	case SubMagnitude:
		if s.Script == Superscript {
			return r.readSuperscript(s)
		}
		return Token{Kind: TokenCount, Magnitude: s.Value, Script: s.Script}, true, nil
	case SubSign:
		return r.readSign(s)
	case SubRadical:
		return Token{Kind: TokenRadical}, true, nil
	case SubOpenRound:
		return Token{Kind: TokenOpenRound}, true, nil
	case SubCloseRound:
		return Token{Kind: TokenCloseRound}, true, nil
	case SubOpenSquare:
		return Token{Kind: TokenOpenSquare}, true, nil
	case SubCloseSquare:
		return Token{Kind: TokenCloseSquare}, true, nil
	case SubDot:
		return Token{Kind: TokenDot}, true, nil
	case SubGreek:
		return Token{Kind: TokenGreek, Greek: s.Greek}, true, nil
	}
	return Token{}, false, &SubtokenError{Kind: SubtokenUnexpectedEnd}
}

// readSign handles the ASCII charge spelling: a baseline magnitude right
// after a baseline sign folds into one charge of that magnitude ("+3" is
// one charge token). Any other sign is a charge of magnitude one.
func (r *tokenReader) readSign(sign Subtoken) (Token, bool, error) {
	if sign.Script == Baseline {
		follow, ok, serr := r.subs.peek()
		if serr != nil {
			return Token{}, false, serr
		}
		if ok && follow.Kind == SubMagnitude && follow.Script == Baseline {
			r.subs.next()
			return Token{Kind: TokenCharge, Sign: sign.Sign, Magnitude: follow.Value}, true, nil
		}
	}
	return Token{Kind: TokenCharge, Sign: sign.Sign, Magnitude: 1}, true, nil
}

func (r *tokenReader) readSuperscript(mag Subtoken) (Token, bool, error) {
	follow, ok, serr := r.subs.peek()
	if serr != nil {
		return Token{}, false, serr
	}
	if !ok {
		return Token{}, false, &TokenError{Kind: TokenCannotAssignMass, MassNumber: mag.Value}
	}
	switch {
	case follow.Kind == SubSign && follow.Script == Superscript:
		r.subs.next()
		return Token{Kind: TokenCharge, Sign: follow.Sign, Magnitude: mag.Value}, true, nil
	case follow.Kind == SubElement:
		r.subs.next()
		iso, err := resolveIsotope(follow.Element, mag.Value)
		if err != nil {
			return Token{}, false, err
		}
		return Token{Kind: TokenIsotope, Isotope: iso}, true, nil
	}
	return Token{Kind: TokenCount, Magnitude: mag.Value, Script: Superscript}, true, nil
}

func resolveIsotope(e chem.Element, massNumber uint32) (chem.Isotope, *TokenError) {
	if massNumber > 0xffff {
		return chem.Isotope{}, &TokenError{Kind: TokenCannotAssignMass, MassNumber: massNumber, Element: e}
	}
	iso, err := chem.NewIsotope(e, uint16(massNumber))
	if err != nil {
		return chem.Isotope{}, &TokenError{Kind: TokenCannotAssignMass, MassNumber: massNumber, Element: e}
	}
	return iso, nil
}
