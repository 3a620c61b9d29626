package formula

import (
	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

// CharClass is the closed alphabet of characters a formula may contain.
// Classification folds OCR look-alike glyphs (dash variants, bullet
// variants, fullwidth forms) onto one canonical member each, but keeps the
// baseline, subscript and superscript digit spaces distinct.
type CharClass uint8

const (
	ClassUpper CharClass = iota + 1
	ClassLower
	ClassDigit
	ClassSubscriptDigit
	ClassSuperscriptDigit
	ClassPlus
	ClassMinus
	ClassSuperscriptPlus
	ClassSuperscriptMinus
	ClassOpenRound
	ClassCloseRound
	ClassOpenSquare
	ClassCloseSquare
	ClassDot
	ClassRadical
	ClassGreek
)

// Char is one classified character: its class, the canonical code point,
// and class-specific payload.
type Char struct {
	Class CharClass
	Rune  rune // canonical form, not the raw input rune
	Digit uint8
	Greek chem.Greek
}

var superscriptDigits = map[rune]uint8{
	'⁰': 0, '¹': 1, '²': 2, '³': 3, '⁴': 4,
	'⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9,
}

// classify maps one raw code point onto the allowed alphabet.
func classify(r rune) (Char, *CharError) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Char{Class: ClassUpper, Rune: r}, nil
	case r >= 'a' && r <= 'z':
		return Char{Class: ClassLower, Rune: r}, nil
	case r >= '0' && r <= '9':
		return Char{Class: ClassDigit, Rune: r, Digit: uint8(r - '0')}, nil
	case r >= '₀' && r <= '₉':
		return Char{Class: ClassSubscriptDigit, Rune: r, Digit: uint8(r - '₀')}, nil
	}
	if d, ok := superscriptDigits[r]; ok {
		return Char{Class: ClassSuperscriptDigit, Rune: superscriptDigitRunes[d], Digit: d}, nil
	}
	switch r {
	case '+', '＋':
		return Char{Class: ClassPlus, Rune: '+'}, nil
	case '-', '−', '–', '—', '‒', '‐', '‑', '﹣', '－':
		// hyphen-minus, minus sign, en dash, em dash, figure dash, hyphen,
		// non-breaking hyphen, small and fullwidth forms
		return Char{Class: ClassMinus, Rune: '-'}, nil
	case '⁺':
		return Char{Class: ClassSuperscriptPlus, Rune: '⁺'}, nil
	case '⁻':
		return Char{Class: ClassSuperscriptMinus, Rune: '⁻'}, nil
	case '(', '（':
		return Char{Class: ClassOpenRound, Rune: '('}, nil
	case ')', '）':
		return Char{Class: ClassCloseRound, Rune: ')'}, nil
	case '[', '［':
		return Char{Class: ClassOpenSquare, Rune: '['}, nil
	case ']', '］':
		return Char{Class: ClassCloseSquare, Rune: ']'}, nil
	case '.', '。', '．':
		return Char{Class: ClassDot, Rune: '.'}, nil
	case '·', '•', '∙', '⋅', '・':
		// middle dot, bullet, bullet operator, dot operator, katakana
		// middle dot
		return Char{Class: ClassRadical, Rune: '·'}, nil
	}
	if g, ok := chem.GreekFromRune(r); ok {
		return Char{Class: ClassGreek, Rune: g.Rune(), Greek: g}, nil
	}
	return Char{}, &CharError{Kind: CharNotAllowed, Rune: r}
}

// charReader is the lookahead-1 cursor over classified characters. A greek
// letter is only valid when immediately followed by a hyphen-like character;
// the hyphen is consumed as part of the greek Char.
type charReader struct {
	runes []rune
	pos   int
	ahead *Char
}

func newCharReader(input string) *charReader {
	return &charReader{runes: []rune(input)}
}

func (r *charReader) next() (Char, bool, *CharError) {
	if r.ahead != nil {
		c := *r.ahead
		r.ahead = nil
		return c, true, nil
	}
	return r.read()
}

func (r *charReader) peek() (Char, bool, *CharError) {
	if r.ahead == nil {
		c, ok, err := r.read()
		if err != nil || !ok {
			return c, ok, err
		}
		r.ahead = &c
	}
	return *r.ahead, true, nil
}

func (r *charReader) read() (Char, bool, *CharError) {
	if r.pos >= len(r.runes) {
		return Char{}, false, nil
	}
	c, err := classify(r.runes[r.pos])
	if err != nil {
		return Char{}, false, err
	}
	r.pos++
	if c.Class == ClassGreek {
		if r.pos >= len(r.runes) {
			return Char{}, false, &CharError{Kind: CharGreekWithoutHyphen, Greek: c.Greek}
		}
		h, herr := classify(r.runes[r.pos])
		if herr != nil || h.Class != ClassMinus {
			return Char{}, false, &CharError{Kind: CharGreekWithoutHyphen, Greek: c.Greek}
		}
		r.pos++
	}
	return c, true, nil
}
