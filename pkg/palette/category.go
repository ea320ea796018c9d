// category.go — Province categories and their default hue bands.
package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned for a selector that names no category.
var ErrUnknownCategory = errors.New("unknown category")

// Category selects a hue band of the color wheel.
type Category int

const (
	Land Category = iota
	Sea
	Lake
	Unknown
)

// Categories lists every category in table order.
var Categories = []Category{Land, Sea, Lake, Unknown}

var selectors = [...]string{"lands", "seas", "lakes", "unknowns"}

// DefaultHue holds the disjoint hue band of each category, in degrees.
var DefaultHue = map[Category]Range{
	Land:    {Lo: 70, Hi: 155},
	Sea:     {Lo: 175, Hi: 255},
	Lake:    {Lo: 256, Hi: 335},
	Unknown: {Lo: 0, Hi: 69},
}

// String returns the plural selector name, e.g. "lands".
func (c Category) String() string {
	if c < Land || c > Unknown {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return selectors[c]
}

// Filename is the table written for the category, e.g. "lands.bin".
func (c Category) Filename() string {
	return c.String() + ".bin"
}

// Symbol is the upper-case name used in generated C tables, e.g. "LANDS".
func (c Category) Symbol() string {
	return strings.ToUpper(c.String())
}

// ParseCategory accepts the plural selector or its singular form.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, sel := range selectors {
		if name == sel || name == strings.TrimSuffix(sel, "s") {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (valid: lands, seas, lakes, unknowns)", ErrUnknownCategory, s)
}
