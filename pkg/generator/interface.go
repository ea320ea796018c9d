package generator

import (
	"io"

	"github.com/xob0t/GoSwatch/pkg/palette"
)

// Encoder serializes a palette in one output format.
type Encoder interface {
	Encode(w io.Writer, p palette.Palette, opts Options) error
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(w io.Writer, p palette.Palette, opts Options) error

// Encode calls f.
func (f EncoderFunc) Encode(w io.Writer, p palette.Palette, opts Options) error {
	return f(w, p, opts)
}

var encoders = map[string]Encoder{
	".bin": EncoderFunc(func(w io.Writer, p palette.Palette, _ Options) error {
		return palette.Encode(w, p)
	}),
	".png": EncoderFunc(writePNG),
	".bmp": EncoderFunc(writeBMP),
	".c":   EncoderFunc(writeCSource),
	".h":   EncoderFunc(writeCHeader),
}
