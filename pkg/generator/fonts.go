// fonts.go - Label font loading for previews. Uses golang.org/x/image/font
// for OpenType rendering and falls back to the embedded Go Regular font when
// no custom font is given or it cannot be loaded.
package generator

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/xob0t/GoSwatch/internal/logger"
)

var log = logger.New("generator")

var (
	defaultFontOnce sync.Once
	defaultFont     *opentype.Font
	defaultFontErr  error
)

// FontManager hands out faces of one parsed font.
type FontManager struct {
	parsed *opentype.Font
}

// NewFontManager loads customPath, or the embedded Go font when customPath
// is empty or unreadable.
func NewFontManager(customPath string) (*FontManager, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err == nil {
			parsed, err := opentype.Parse(data)
			if err == nil {
				return &FontManager{parsed: parsed}, nil
			}
			log.Warn("could not parse font %q, using default: %v", customPath, err)
		} else {
			log.Warn("could not load font %q, using default: %v", customPath, err)
		}
	}

	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = opentype.Parse(goregular.TTF)
	})
	if defaultFontErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", defaultFontErr)
	}
	return &FontManager{parsed: defaultFont}, nil
}

// GetFace returns a font.Face at the specified size. The caller closes it.
func (fm *FontManager) GetFace(size float64, dpi float64) (font.Face, error) {
	if dpi <= 0 {
		dpi = 72
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
