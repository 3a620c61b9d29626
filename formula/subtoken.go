package formula

import (
	"fmt"

	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

// Typesetting distinguishes the three digit/sign spaces. A magnitude is a
// run of digits from exactly one space.
type Typesetting uint8

const (
	Baseline Typesetting = iota
	Subscript
	Superscript
)

func (t Typesetting) String() string {
	switch t {
	case Subscript:
		return "subscript"
	case Superscript:
		return "superscript"
	default:
		return "baseline"
	}
}

// SubtokenKind enumerates the output alphabet of the subtoken reader.
type SubtokenKind uint8

const (
	SubElement SubtokenKind = iota + 1
	SubIsotope
	SubComplex
	SubResidual
	SubMagnitude
	SubSign
	SubRadical
	SubOpenRound
	SubCloseRound
	SubOpenSquare
	SubCloseSquare
	SubDot
	SubGreek
)

// Subtoken is one syntactic atom: a resolved symbol, a folded digit run, a
// sign, a marker or a bracket. Semantic meaning (count vs. charge vs.
// isotope prefix) is assigned one layer up.
type Subtoken struct {
	Kind    SubtokenKind
	Element chem.Element
	Isotope chem.Isotope
	Complex chem.Complex
	Value   uint32
	Sign    int8
	Script  Typesetting
	Greek   chem.Greek
}

func (s Subtoken) String() string {
	switch s.Kind {
	case SubElement:
		return fmt.Sprintf("element %s", s.Element.Symbol())
	case SubIsotope:
		return fmt.Sprintf("isotope %s", s.Isotope)
	case SubComplex:
		return fmt.Sprintf("group %s", s.Complex.Symbol())
	case SubResidual:
		return "residual R"
	case SubMagnitude:
		return fmt.Sprintf("%s number %d", s.Script, s.Value)
	case SubSign:
		if s.Sign < 0 {
			return fmt.Sprintf("%s sign -", s.Script)
		}
		return fmt.Sprintf("%s sign +", s.Script)
	case SubRadical:
		return "radical ·"
	case SubOpenRound:
		return "bracket ("
	case SubCloseRound:
		return "bracket )"
	case SubOpenSquare:
		return "bracket ["
	case SubCloseSquare:
		return "bracket ]"
	case SubDot:
		return "separator ."
	case SubGreek:
		return fmt.Sprintf("greek letter %c", s.Greek.Rune())
	default:
		return "invalid subtoken"
	}
}

// subtokenReader pulls classified characters and folds them into subtokens
// with one subtoken of lookahead. It also enforces the successor rules: a
// sign may not be followed by a sign of the same typesetting family, a
// superscript digit run may not follow a superscript sign (the superscript
// charge spelling is magnitude-first), two magnitudes may never be
// adjacent, and the radical marker may not be doubled. A baseline digit
// run after a baseline sign is legal; the token layer folds the pair into
// one charge.
type subtokenReader struct {
	chars *charReader
	ahead *Subtoken
	last  *Subtoken
}

func newSubtokenReader(input string) *subtokenReader {
	return &subtokenReader{chars: newCharReader(input)}
}

func (r *subtokenReader) next() (Subtoken, bool, *SubtokenError) {
	if r.ahead != nil {
		s := *r.ahead
		r.ahead = nil
		return s, true, nil
	}
	s, ok, err := r.read()
	if err != nil || !ok {
		return s, ok, err
	}
	if serr := r.checkSuccessor(s); serr != nil {
		return Subtoken{}, false, serr
	}
	r.last = &s
	return s, true, nil
}

func (r *subtokenReader) peek() (Subtoken, bool, *SubtokenError) {
	if r.ahead == nil {
		s, ok, err := r.next()
		if err != nil || !ok {
			return s, ok, err
		}
		r.ahead = &s
	}
	return *r.ahead, true, nil
}

func (r *subtokenReader) checkSuccessor(s Subtoken) *SubtokenError {
	if r.last == nil {
		return nil
	}
	prev := *r.last
	switch {
	case prev.Kind == SubSign && s.Kind == SubSign && prev.Script == s.Script:
		return &SubtokenError{Kind: SubtokenInvalidSuccessor, First: prev, Second: s}
	case prev.Kind == SubSign && s.Kind == SubMagnitude &&
		prev.Script == Superscript && s.Script == Superscript:
		return &SubtokenError{Kind: SubtokenInvalidSuccessor, First: prev, Second: s}
	case prev.Kind == SubMagnitude && s.Kind == SubMagnitude:
		return &SubtokenError{Kind: SubtokenInvalidSuccessor, First: prev, Second: s}
	case prev.Kind == SubRadical && s.Kind == SubRadical:
		return &SubtokenError{Kind: SubtokenRepeatedMarker, First: prev}
	}
	return nil
}

func (r *subtokenReader) read() (Subtoken, bool, *SubtokenError) {
	c, ok, cerr := r.chars.next()
	if cerr != nil {
		return Subtoken{}, false, &SubtokenError{Char: cerr}
	}
	if !ok {
		return Subtoken{}, false, nil
	}
	switch c.Class {
	case ClassUpper:
		return r.readSymbol(c)
	case ClassLower:
		return Subtoken{}, false, &SubtokenError{Kind: SubtokenUnknownSymbol, Symbol: string(c.Rune)}
	case ClassDigit:
		return r.readMagnitude(c, Baseline)
	case ClassSubscriptDigit:
		return r.readMagnitude(c, Subscript)
	case ClassSuperscriptDigit:
		return r.readMagnitude(c, Superscript)
	case ClassPlus:
		return Subtoken{Kind: SubSign, Sign: 1, Script: Baseline}, true, nil
	case ClassMinus:
		return Subtoken{Kind: SubSign, Sign: -1, Script: Baseline}, true, nil
	case ClassSuperscriptPlus:
		return Subtoken{Kind: SubSign, Sign: 1, Script: Superscript}, true, nil
	case ClassSuperscriptMinus:
		return Subtoken{Kind: SubSign, Sign: -1, Script: Superscript}, true, nil
	case ClassOpenRound:
		return Subtoken{Kind: SubOpenRound}, true, nil
	case ClassCloseRound:
		return Subtoken{Kind: SubCloseRound}, true, nil
	case ClassOpenSquare:
		return Subtoken{Kind: SubOpenSquare}, true, nil
	case ClassCloseSquare:
		return Subtoken{Kind: SubCloseSquare}, true, nil
	case ClassDot:
		return Subtoken{Kind: SubDot}, true, nil
	case ClassRadical:
		return Subtoken{Kind: SubRadical}, true, nil
	case ClassGreek:
		return Subtoken{Kind: SubGreek, Greek: c.Greek}, true, nil
	}
	return Subtoken{}, false, &SubtokenError{Char: &CharError{Kind: CharNotAllowed, Rune: c.Rune}}
}

// readSymbol resolves an uppercase letter, optionally joined with one
// following lowercase letter. Resolution order for a digraph: two-letter
// element, then complex group. For a lone letter: element, then the D/T
// isotope shorthand, then the residual marker R.
func (r *subtokenReader) readSymbol(first Char) (Subtoken, bool, *SubtokenError) {
	if c, ok, cerr := r.chars.peek(); cerr == nil && ok && c.Class == ClassLower {
		r.chars.next()
		sym := string([]rune{first.Rune, c.Rune})
		if e, ok := chem.ElementFromSymbol(sym); ok {
			return Subtoken{Kind: SubElement, Element: e}, true, nil
		}
		if g, ok := chem.ComplexFromSymbol(sym); ok {
			return Subtoken{Kind: SubComplex, Complex: g}, true, nil
		}
		return Subtoken{}, false, &SubtokenError{Kind: SubtokenUnknownSymbol, Symbol: sym}
	}
	sym := string(first.Rune)
	if e, ok := chem.ElementFromSymbol(sym); ok {
		return Subtoken{Kind: SubElement, Element: e}, true, nil
	}
	if iso, ok := chem.IsotopeFromShorthand(byte(first.Rune)); ok {
		return Subtoken{Kind: SubIsotope, Isotope: iso}, true, nil
	}
	if first.Rune == 'R' {
		return Subtoken{Kind: SubResidual}, true, nil
	}
	return Subtoken{}, false, &SubtokenError{Kind: SubtokenUnknownSymbol, Symbol: sym}
}

// readMagnitude folds a run of same-typesetting digits into one value with
// leading-zero and overflow rejection.
func (r *subtokenReader) readMagnitude(first Char, script Typesetting) (Subtoken, bool, *SubtokenError) {
	value := uint32(first.Digit)
	for {
		c, ok, cerr := r.chars.peek()
		if cerr != nil || !ok || c.Class != first.Class {
			break
		}
		r.chars.next()
		if value == 0 {
			return Subtoken{}, false, &SubtokenError{Kind: SubtokenLeadingZero}
		}
		v, fits := mulAdd10(value, c.Digit)
		if !fits {
			return Subtoken{}, false, &SubtokenError{Kind: SubtokenOverflow}
		}
		value = v
	}
	return Subtoken{Kind: SubMagnitude, Value: value, Script: script}, true, nil
}
