// enumerate.go — Exhaustive HSV grid enumeration and stable dedup.
package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open integer interval [Lo, Hi). Lo >= Hi is empty.
type Range struct {
	Lo int `yaml:"lo" json:"lo"`
	Hi int `yaml:"hi" json:"hi"`
}

// Len is the number of integers in the range.
func (r Range) Len() int {
	return max(r.Hi-r.Lo, 0)
}

// Contains reports whether v lies in [Lo, Hi).
func (r Range) Contains(v int) bool {
	return v >= r.Lo && v < r.Hi
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}

// ParseRange parses "lo:hi".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return Range{}, fmt.Errorf("invalid range %q: expected lo:hi", s)
	}
	l, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	return Range{Lo: l, Hi: h}, nil
}

// Palette is an ordered sequence of colors.
type Palette []Color

// Enumerate converts every point of hue × sat × val, hue outermost and value
// innermost.
func Enumerate(hue, sat, val Range) Palette {
	p := make(Palette, 0, hue.Len()*sat.Len()*val.Len())
	for h := hue.Lo; h < hue.Hi; h++ {
		for s := sat.Lo; s < sat.Hi; s++ {
			for v := val.Lo; v < val.Hi; v++ {
				p = append(p, FromHSV(h, s, v))
			}
		}
	}
	return p
}

// Dedup drops repeated colors, keeping each first occurrence in place.
func Dedup(p Palette) Palette {
	seen := make(map[Color]struct{}, len(p))
	out := make(Palette, 0, len(p))
	for _, c := range p {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
