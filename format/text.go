package format

import (
	"io"

	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

// TextEncoder emits the canonical notation followed by a newline.
type TextEncoder struct {
	w io.Writer
	f *formula.Formula
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(f *formula.Formula) error {
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

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return e.f.MarshalText()
}
