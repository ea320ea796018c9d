// Package generator writes color tables to disk.
//
// All output follows one pipeline: the palette is generated first, then an
// encoder chosen by file extension serializes it as a raw table, a preview
// image, or a C source table.
package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xob0t/GoSwatch/pkg/palette"
)

// Options carries the metadata some encoders need.
type Options struct {
	Category palette.Category
	// Symbol names the C array. Default: SymbolPrefix + category symbol.
	Symbol string
	// Label is drawn above preview images. Default: category and count.
	Label string
	// Columns is the preview grid width in swatches. Default: square grid.
	Columns int
	// Width is the preview width in pixels (default 1024).
	Width int
	// Font is an optional TTF for the preview label.
	Font string
}

// SymbolPrefix prefixes the default C array names.
const SymbolPrefix = "HMDT_ALL_"

func (o Options) symbol() string {
	if o.Symbol != "" {
		return o.Symbol
	}
	return SymbolPrefix + o.Category.Symbol()
}

// Generate creates output. The format is inferred from the file extension:
//   - ".bin" → raw 3-byte records
//   - ".png", ".bmp" → labeled swatch preview
//   - ".c", ".h" → C table definition or declaration
//
// The file is created or truncated; there is no atomic replace.
func Generate(output string, p palette.Palette, opts Options) error {
	enc, err := encoderFor(filepath.Ext(output))
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := enc.Encode(w, p, opts); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return f.Close()
}

// GenerateToWriter writes to an io.Writer. The format is specified by ext.
// This is useful for in-memory generation (e.g., WASM).
func GenerateToWriter(w io.Writer, ext string, p palette.Palette, opts Options) error {
	enc, err := encoderFor(ext)
	if err != nil {
		return err
	}
	return enc.Encode(w, p, opts)
}

func encoderFor(ext string) (Encoder, error) {
	enc, ok := encoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q: use .bin, .png, .bmp, .c or .h", ext)
	}
	return enc, nil
}
