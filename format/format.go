package format

import (
	"encoding"

	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(f *formula.Formula) error
}
