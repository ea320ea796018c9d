// preview.go — Swatch grid rendering for visual inspection of a table.
// Colors are laid out row-major in table order, so a well shuffled table
// looks like noise and any banding points at a weak shuffle.
package generator

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/xob0t/GoSwatch/pkg/palette"
)

const (
	defaultPreviewWidth = 1024
	labelHeight         = 32
	labelSize           = 18
)

var (
	previewBackground = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	previewText       = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

// gridSize returns the swatch grid dimensions for n colors.
func gridSize(n, columns int) (cols, rows int) {
	cols = columns
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(n))))
	}
	cols = max(cols, 1)
	rows = max((n+cols-1)/cols, 1)
	return cols, rows
}

// Preview renders p as a labeled grid scaled to opts.Width pixels.
func Preview(p palette.Palette, opts Options) (*image.RGBA, error) {
	cols, rows := gridSize(len(p), opts.Columns)
	grid := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for i, c := range p {
		grid.SetRGBA(i%cols, i/cols, c.RGBA())
	}

	width := opts.Width
	if width <= 0 {
		width = defaultPreviewWidth
	}
	height := max(width*rows/cols, 1)

	img := image.NewRGBA(image.Rect(0, 0, width, labelHeight+height))
	draw.Draw(img, img.Bounds(), image.NewUniform(previewBackground), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(img, image.Rect(0, labelHeight, width, labelHeight+height), grid, grid.Bounds(), draw.Over, nil)

	label := opts.Label
	if label == "" {
		label = fmt.Sprintf("%s: %d colors", opts.Category, len(p))
	}

	fm, err := NewFontManager(opts.Font)
	if err != nil {
		return nil, err
	}
	face, err := fm.GetFace(labelSize, 72)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(previewText),
		Face: face,
		Dot:  fixed.P(8, labelHeight-9),
	}
	drawer.DrawString(label)

	return img, nil
}
