// png.go — Preview image writers.
package generator

import (
	"fmt"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/xob0t/GoSwatch/pkg/palette"
)

// writePNG renders the preview and encodes it as PNG.
func writePNG(w io.Writer, p palette.Palette, opts Options) error {
	img, err := Preview(p, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// writeBMP renders the preview and encodes it with golang.org/x/image/bmp.
func writeBMP(w io.Writer, p palette.Palette, opts Options) error {
	img, err := Preview(p, opts)
	if err != nil {
		return err
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("encode BMP: %w", err)
	}
	return nil
}
