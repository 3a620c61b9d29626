package format

import (
	"encoding/json"
	"io"

	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

// JSONEncoder emits the full parse tree as indented JSON, one node object
// per tree node with only the fields that apply to its kind.
type JSONEncoder struct {
	w io.Writer
	f *formula.Formula
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(f *formula.Formula) error {
	e.f = f
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = e.w.Write([]byte{'\n'})
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildFormulaData(), "", "  ")
}

type jsonFormula struct {
	Canonical  string          `json:"canonical"`
	Descriptor string          `json:"descriptor,omitempty"`
	Components []jsonComponent `json:"components"`
}

type jsonComponent struct {
	Count uint32    `json:"count"`
	Tree  *jsonNode `json:"tree"`
}

type jsonNode struct {
	Kind       string      `json:"kind"`
	Symbol     string      `json:"symbol,omitempty"`
	MassNumber uint16      `json:"massNumber,omitempty"`
	Count      uint32      `json:"count,omitempty"`
	Charge     int32       `json:"charge,omitempty"`
	Bracket    string      `json:"bracket,omitempty"`
	Side       string      `json:"side,omitempty"`
	Child      *jsonNode   `json:"child,omitempty"`
	Children   []*jsonNode `json:"children,omitempty"`
}

func (e *JSONEncoder) buildFormulaData() jsonFormula {
	data := jsonFormula{
		Canonical:  e.f.String(),
		Components: make([]jsonComponent, len(e.f.Components)),
	}
	if e.f.Descriptor.IsValid() {
		data.Descriptor = e.f.Descriptor.String()
	}
	for i, c := range e.f.Components {
		data.Components[i] = jsonComponent{
			Count: c.Count,
			Tree:  buildNode(c.Tree),
		}
	}
	return data
}

func buildNode(t *formula.Tree) *jsonNode {
	switch t.Kind {
	case formula.KindElement:
		return &jsonNode{Kind: "element", Symbol: t.Element.Symbol()}
	case formula.KindIsotope:
		return &jsonNode{
			Kind:       "isotope",
			Symbol:     t.Isotope.Element.Symbol(),
			MassNumber: t.Isotope.MassNumber,
		}
	case formula.KindResidual:
		return &jsonNode{Kind: "residual"}
	case formula.KindSequence:
		children := make([]*jsonNode, len(t.Children))
		for i, c := range t.Children {
			children[i] = buildNode(c)
		}
		return &jsonNode{Kind: "sequence", Children: children}
	case formula.KindRepeat:
		return &jsonNode{Kind: "repeat", Count: t.Count, Child: buildNode(t.Child)}
	case formula.KindCharge:
		return &jsonNode{Kind: "charge", Charge: t.Charge, Child: buildNode(t.Child)}
	case formula.KindUnit:
		return &jsonNode{Kind: "unit", Bracket: bracketName(t.Bracket), Child: buildNode(t.Child)}
	case formula.KindRadical:
		return &jsonNode{Kind: "radical", Side: sideName(t.Side), Child: buildNode(t.Child)}
	}
	return &jsonNode{Kind: "invalid"}
}

func bracketName(b formula.Bracket) string {
	if b == formula.Square {
		return "square"
	}
	return "round"
}

func sideName(s formula.Side) string {
	if s == formula.SideRight {
		return "right"
	}
	return "left"
}
