package formula

import (
	"testing"

	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

func readAllSubtokens(t *testing.T, input string) []Subtoken {
	t.Helper()
	r := newSubtokenReader(input)
	var out []Subtoken
	for {
		s, ok, err := r.next()
		if err != nil {
			t.Fatalf("next() failed on %q: %v", input, err)
		}
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

func subtokenErr(input string) *SubtokenError {
	r := newSubtokenReader(input)
	for {
		_, ok, err := r.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

func TestSubtokenSymbols(t *testing.T) {
	tests := []struct {
		input string
		want  []Subtoken
	}{
		{"H", []Subtoken{{Kind: SubElement, Element: chem.Hydrogen}}},
		{"He", []Subtoken{{Kind: SubElement, Element: chem.Helium}}},
		{"HO", []Subtoken{
			{Kind: SubElement, Element: chem.Hydrogen},
			{Kind: SubElement, Element: chem.Oxygen},
		}},
		{"Cl", []Subtoken{{Kind: SubElement, Element: chem.Chlorine}}},
		{"D", []Subtoken{{Kind: SubIsotope, Isotope: chem.Deuterium}}},
		{"T", []Subtoken{{Kind: SubIsotope, Isotope: chem.Tritium}}},
		{"R", []Subtoken{{Kind: SubResidual}}},
		{"Me", []Subtoken{{Kind: SubComplex, Complex: chem.Methyl}}},
		{"Ph", []Subtoken{{Kind: SubComplex, Complex: chem.Phenyl}}},
		// Pr resolves as the element praseodymium before any group lookup
		{"Pr", []Subtoken{{Kind: SubElement, Element: chem.Praseodymium}}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := readAllSubtokens(t, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d subtokens, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("subtoken %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSubtokenUnknownSymbols(t *testing.T) {
	tests := []struct {
		input  string
		symbol string
	}{
		{"Xx", "Xx"},
		{"Qq", "Qq"},
		{"A", "A"},
		{"x", "x"},
		{"Hx", "Hx"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := subtokenErr(tt.input)
			if err == nil || err.Kind != SubtokenUnknownSymbol {
				t.Fatalf("error = %+v, want unknown symbol", err)
			}
			if err.Symbol != tt.symbol {
				t.Errorf("symbol = %q, want %q", err.Symbol, tt.symbol)
			}
		})
	}
}

func TestSubtokenMagnitudes(t *testing.T) {
	tests := []struct {
		input  string
		value  uint32
		script Typesetting
	}{
		{"7", 7, Baseline},
		{"123", 123, Baseline},
		{"0", 0, Baseline},
		{"₁₂", 12, Subscript},
		{"¹³", 13, Superscript},
		{"4294967295", 4294967295, Baseline},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := readAllSubtokens(t, tt.input)
			if len(got) != 1 {
				t.Fatalf("got %d subtokens, want 1", len(got))
			}
			want := Subtoken{Kind: SubMagnitude, Value: tt.value, Script: tt.script}
			if got[0] != want {
				t.Errorf("got %+v, want %+v", got[0], want)
			}
		})
	}
}

func TestSubtokenMagnitudeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  SubtokenErrorKind
	}{
		{"01", SubtokenLeadingZero},
		{"007", SubtokenLeadingZero},
		{"₀₂", SubtokenLeadingZero},
		{"4294967296", SubtokenOverflow},
		{"99999999999", SubtokenOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := subtokenErr(tt.input)
			if err == nil || err.Kind != tt.kind {
				t.Errorf("error = %+v, want kind %d", err, tt.kind)
			}
		})
	}
}

func TestSubtokenSuccessorRules(t *testing.T) {
	invalid := []string{
		"H++", // baseline sign after baseline sign
		"H+-", // baseline sign after baseline sign
		"H⁺⁻", // superscript sign after superscript sign
		"H⁺²", // superscript digit after superscript sign
		"H₂3", // two magnitudes in a row
		"H2₃", // two magnitudes in a row
		"H²₃", // two magnitudes in a row
	}
	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			err := subtokenErr(input)
			if err == nil || err.Kind != SubtokenInvalidSuccessor {
				t.Errorf("error = %+v, want invalid successor", err)
			}
		})
	}

	// cross-family successors are legal, and so is a baseline digit run
	// after a baseline sign (the ASCII charge spelling, folded one layer up)
	valid := []string{
		"H⁺-",  // baseline sign after superscript sign
		"H-⁺",  // superscript sign after baseline sign
		"H⁺2",  // baseline digit after superscript sign
		"H+₂",  // subscript digit after baseline sign
		"H+2",  // baseline digit after baseline sign
		"C-2H", // baseline digit after baseline sign
	}
	for _, input := range valid {
		t.Run(input, func(t *testing.T) {
			if err := subtokenErr(input); err != nil {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestSubtokenRepeatedRadical(t *testing.T) {
	for _, input := range []string{"··", "H··", "·•"} {
		t.Run(input, func(t *testing.T) {
			err := subtokenErr(input)
			if err == nil || err.Kind != SubtokenRepeatedMarker {
				t.Errorf("error = %+v, want repeated marker", err)
			}
		})
	}
}

func TestSubtokenBracketsAndMarkers(t *testing.T) {
	got := readAllSubtokens(t, "([·.])")
	want := []SubtokenKind{SubOpenRound, SubOpenSquare, SubRadical, SubDot, SubCloseSquare, SubCloseRound}
	if len(got) != len(want) {
		t.Fatalf("got %d subtokens, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Kind != want[i] {
			t.Errorf("subtoken %d kind = %d, want %d", i, got[i].Kind, want[i])
		}
	}
}

func TestSubtokenCharWrapping(t *testing.T) {
	err := subtokenErr("H O")
	if err == nil || err.Char == nil {
		t.Fatalf("error = %+v, want wrapped character error", err)
	}
	if err.Char.Rune != ' ' {
		t.Errorf("offending rune = %q, want space", err.Char.Rune)
	}
}
