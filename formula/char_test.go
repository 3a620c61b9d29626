package formula

import (
	"testing"

	"github.com/earth-metabolome-initiative/molecular-formulas/chem"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r     rune
		class CharClass
		canon rune
	}{
		{'A', ClassUpper, 'A'},
		{'z', ClassLower, 'z'},
		{'0', ClassDigit, '0'},
		{'7', ClassDigit, '7'},
		{'₃', ClassSubscriptDigit, '₃'},
		{'²', ClassSuperscriptDigit, '²'},
		{'⁷', ClassSuperscriptDigit, '⁷'},
		{'+', ClassPlus, '+'},
		{'＋', ClassPlus, '+'},
		{'-', ClassMinus, '-'},
		{'−', ClassMinus, '-'}, // minus sign
		{'–', ClassMinus, '-'}, // en dash
		{'—', ClassMinus, '-'}, // em dash
		{'‒', ClassMinus, '-'}, // figure dash
		{'⁺', ClassSuperscriptPlus, '⁺'},
		{'⁻', ClassSuperscriptMinus, '⁻'},
		{'(', ClassOpenRound, '('},
		{'）', ClassCloseRound, ')'},
		{'[', ClassOpenSquare, '['},
		{']', ClassCloseSquare, ']'},
		{'.', ClassDot, '.'},
		{'。', ClassDot, '.'},
		{'·', ClassRadical, '·'},
		{'•', ClassRadical, '·'},
		{'・', ClassRadical, '·'},
		{'⋅', ClassRadical, '·'},
		{'α', ClassGreek, 'α'},
		{'ω', ClassGreek, 'ω'},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			c, err := classify(tt.r)
			if err != nil {
				t.Fatalf("classify(%q) failed: %v", tt.r, err)
			}
			if c.Class != tt.class || c.Rune != tt.canon {
				t.Errorf("classify(%q) = class %d rune %q, want class %d rune %q",
					tt.r, c.Class, c.Rune, tt.class, tt.canon)
			}
		})
	}
}

func TestClassifyDigitValues(t *testing.T) {
	for d := uint8(0); d <= 9; d++ {
		base, _ := classify(rune('0' + d))
		sub, _ := classify(subscriptDigitRunes[d])
		sup, _ := classify(superscriptDigitRunes[d])
		if base.Digit != d || sub.Digit != d || sup.Digit != d {
			t.Errorf("digit %d classified as %d/%d/%d", d, base.Digit, sub.Digit, sup.Digit)
		}
	}
}

func TestClassifyRejects(t *testing.T) {
	for _, r := range []rune{' ', '\n', '!', '=', '{', '@', '☃', '中'} {
		_, err := classify(r)
		if err == nil {
			t.Errorf("classify(%q) should fail", r)
			continue
		}
		if err.Kind != CharNotAllowed || err.Rune != r {
			t.Errorf("classify(%q) error = %+v", r, err)
		}
	}
}

func TestCharReaderGreekHyphen(t *testing.T) {
	r := newCharReader("α-")
	c, ok, err := r.next()
	if err != nil || !ok {
		t.Fatalf("next() = %v, %v", ok, err)
	}
	if c.Class != ClassGreek || c.Greek != chem.Alpha {
		t.Errorf("got %+v, want greek alpha", c)
	}
	// the hyphen is absorbed into the greek char
	if _, ok, _ := r.next(); ok {
		t.Error("hyphen should have been consumed with the greek letter")
	}
}

func TestCharReaderGreekWithoutHyphen(t *testing.T) {
	for _, input := range []string{"α", "αFe", "β2"} {
		r := newCharReader(input)
		_, _, err := r.next()
		if err == nil || err.Kind != CharGreekWithoutHyphen {
			t.Errorf("next(%q) error = %+v, want greek-without-hyphen", input, err)
		}
	}
}

func TestCharReaderGreekDashVariants(t *testing.T) {
	// any dash look-alike satisfies the hyphen requirement
	for _, input := range []string{"α-", "α−", "α–", "α—"} {
		r := newCharReader(input)
		c, ok, err := r.next()
		if err != nil || !ok || c.Greek != chem.Alpha {
			t.Errorf("next(%q) = %+v, %v, %v", input, c, ok, err)
		}
	}
}

func TestCharReaderPeek(t *testing.T) {
	r := newCharReader("Na")
	p1, _, _ := r.peek()
	p2, _, _ := r.peek()
	if p1 != p2 {
		t.Error("peek is not idempotent")
	}
	n, _, _ := r.next()
	if n != p1 {
		t.Error("next does not return the peeked char")
	}
	if c, _, _ := r.next(); c.Class != ClassLower {
		t.Errorf("second char = %+v, want lowercase a", c)
	}
}
