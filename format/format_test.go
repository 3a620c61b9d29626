package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

func TestTextEncoder(t *testing.T) {
	f, err := formula.ParseChemical("CuSO4.5H2O")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(f); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "CuSO₄.5H₂O\n" {
		t.Errorf("text output = %q", got)
	}
}

func TestJSONEncoderWater(t *testing.T) {
	f, err := formula.ParseChemical("H2O")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(f); err != nil {
		t.Fatal(err)
	}

	var out struct {
		Canonical  string `json:"canonical"`
		Components []struct {
			Count uint32 `json:"count"`
			Tree  struct {
				Kind     string `json:"kind"`
				Children []struct {
					Kind   string `json:"kind"`
					Symbol string `json:"symbol"`
					Count  uint32 `json:"count"`
				} `json:"children"`
			} `json:"tree"`
		} `json:"components"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if out.Canonical != "H₂O" {
		t.Errorf("canonical = %q", out.Canonical)
	}
	if len(out.Components) != 1 || out.Components[0].Count != 1 {
		t.Fatalf("components = %+v", out.Components)
	}
	tree := out.Components[0].Tree
	if tree.Kind != "sequence" || len(tree.Children) != 2 {
		t.Fatalf("tree = %+v", tree)
	}
	if tree.Children[0].Kind != "repeat" || tree.Children[0].Count != 2 {
		t.Errorf("first child = %+v, want H repeated twice", tree.Children[0])
	}
	if tree.Children[1].Kind != "element" || tree.Children[1].Symbol != "O" {
		t.Errorf("second child = %+v, want O", tree.Children[1])
	}
}

func TestJSONEncoderNodeFields(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Na+", `"kind": "charge"`},
		{"Na+", `"charge": 1`},
		{"Cl-", `"charge": -1`},
		{"[13C]", `"massNumber": 13`},
		{"·OH", `"side": "left"`},
		{"HO·", `"side": "right"`},
		{"(H2O)2", `"bracket": "round"`},
		{"Na[AlSi3O8]", `"bracket": "square"`},
		{"α-Fe", `"descriptor": "α"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := formula.ParseChemical(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := NewJSONEncoder(&buf).Encode(f); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output for %q lacks %s:\n%s", tt.input, tt.want, buf.String())
			}
		})
	}
}

func TestJSONEncoderResidual(t *testing.T) {
	f, err := formula.ParseMarkush("R")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(f); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"kind": "residual"`) {
		t.Errorf("output lacks the residual node:\n%s", buf.String())
	}
}
