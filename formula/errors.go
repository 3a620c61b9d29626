package formula

import (
	"fmt"

	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

// The error taxonomy is layered like the reader stack itself: character,
// subtoken, token, parse. Each layer's error type wraps the layer below it
// via Unwrap, so errors.As can recover the deepest cause.

// CharErrorKind enumerates character-level failures.
type CharErrorKind uint8

const (
	CharNotAllowed CharErrorKind = iota + 1
	CharGreekWithoutHyphen
)

// CharError reports a code point outside the allowed alphabet, or a greek
// letter that is not followed by a hyphen.
type CharError struct {
	Kind  CharErrorKind
	Rune  rune
	Greek chem.Greek
}

func (e *CharError) Error() string {
	switch e.Kind {
	case CharGreekWithoutHyphen:
		return fmt.Sprintf("greek letter %q must be followed by a hyphen", e.Greek.Rune())
	default:
		return fmt.Sprintf("character %q is not allowed in a formula", e.Rune)
	}
}

// SubtokenErrorKind enumerates subtoken-level failures.
type SubtokenErrorKind uint8

const (
	SubtokenUnknownSymbol SubtokenErrorKind = iota + 1
	SubtokenOverflow
	SubtokenLeadingZero
	SubtokenUnexpectedEnd
	SubtokenInvalidSuccessor
	SubtokenRepeatedMarker
)

// SubtokenError reports a failure while grouping characters into subtokens.
// For SubtokenInvalidSuccessor both offending subtokens are recorded.
type SubtokenError struct {
	Kind   SubtokenErrorKind
	Symbol string   // unknown letter combination
	First  Subtoken // invalid successor: the subtoken read first
	Second Subtoken // invalid successor: the subtoken that may not follow it
	Char   *CharError
}

func (e *SubtokenError) Error() string {
	switch e.Kind {
	case SubtokenUnknownSymbol:
		return fmt.Sprintf("unknown symbol %q", e.Symbol)
	case SubtokenOverflow:
		return "number too large"
	case SubtokenLeadingZero:
		return "number has a leading zero"
	case SubtokenUnexpectedEnd:
		return "unexpected end of input"
	case SubtokenInvalidSuccessor:
		return fmt.Sprintf("%s may not follow %s", e.Second, e.First)
	case SubtokenRepeatedMarker:
		return fmt.Sprintf("marker %s may not be repeated", e.First)
	default:
		if e.Char != nil {
			return e.Char.Error()
		}
		return "invalid subtoken"
	}
}

func (e *SubtokenError) Unwrap() error {
	if e.Char == nil {
		return nil
	}
	return e.Char
}

// TokenErrorKind enumerates token-level failures.
type TokenErrorKind uint8

const (
	// TokenCannotAssignMass is reported when a superscript magnitude is not
	// followed by an element it could serve as mass number for.
	TokenCannotAssignMass TokenErrorKind = iota + 1
)

// TokenError reports a failure while disambiguating subtokens into tokens.
type TokenError struct {
	Kind       TokenErrorKind
	MassNumber uint32
	Element    chem.Element // zero when no element followed at all
	Sub        *SubtokenError
}

func (e *TokenError) Error() string {
	if e.Sub != nil {
		return e.Sub.Error()
	}
	if e.Element.IsValid() {
		return fmt.Sprintf("cannot assign mass number %d to %s", e.MassNumber, e.Element.Symbol())
	}
	return fmt.Sprintf("cannot assign mass number %d: no element follows", e.MassNumber)
}

func (e *TokenError) Unwrap() error {
	if e.Sub == nil {
		return nil
	}
	return e.Sub
}

// ParseErrorKind enumerates parse-level failures.
type ParseErrorKind uint8

const (
	ParseEmptyFormula ParseErrorKind = iota + 1
	ParseEmptyUnit
	ParseTrailingInput
	ParseMissingCloseBracket
	ParseResidualNotSupported
	ParseUnexpectedGreek
	ParseZeroCharge
	ParseZeroCount
	ParseNotHillOrdered
	ParseUnexpectedToken
	ParseTooDeep
)

// ParseError is the top of the taxonomy: every failure surfaced by Parse is
// one of these, possibly wrapping a token-level cause.
type ParseError struct {
	Kind    ParseErrorKind
	Bracket Bracket      // missing close bracket
	Token   *Token       // unexpected token, when one was read
	Element chem.Element // not Hill ordered: first out-of-order element
	Tok     *TokenError
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseEmptyFormula:
		return "empty formula"
	case ParseEmptyUnit:
		return "empty molecular tree"
	case ParseTrailingInput:
		return "unconsumed input after formula"
	case ParseMissingCloseBracket:
		return fmt.Sprintf("missing closing bracket %q", e.Bracket.close())
	case ParseResidualNotSupported:
		return "residual atoms are not supported in this dialect"
	case ParseUnexpectedGreek:
		return "greek letter is only allowed at the start of a formula"
	case ParseZeroCharge:
		return "charge must not be zero"
	case ParseZeroCount:
		return "count must not be zero"
	case ParseNotHillOrdered:
		return fmt.Sprintf("elements are not in Hill order: %s is out of place", e.Element.Symbol())
	case ParseUnexpectedToken:
		if e.Token != nil {
			return fmt.Sprintf("unexpected %s", e.Token)
		}
		return "unexpected token"
	case ParseTooDeep:
		return "formula is nested too deeply"
	default:
		if e.Tok != nil {
			return e.Tok.Error()
		}
		return "invalid formula"
	}
}

func (e *ParseError) Unwrap() error {
	if e.Tok == nil {
		return nil
	}
	return e.Tok
}

func wrapTokenError(err error) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	if te, ok := err.(*TokenError); ok {
		return &ParseError{Tok: te}
	}
	if se, ok := err.(*SubtokenError); ok {
		return &ParseError{Tok: &TokenError{Sub: se}}
	}
	return &ParseError{Kind: ParseUnexpectedToken}
}
