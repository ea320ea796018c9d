// stats.go — Summary of a generated table.
package palette

import "math"

// Extent is an observed closed interval.
type Extent struct {
	Min, Max float64
}

func (e *Extent) add(v float64) {
	e.Min = math.Min(e.Min, v)
	e.Max = math.Max(e.Max, v)
}

// Summary describes a table without reference to how it was generated.
// Hue is in degrees, saturation and value in [0, 1], recovered from the
// truncated bytes so they only approximate the generating grid.
type Summary struct {
	Count      int
	Unique     int
	Duplicates int
	Digest     uint64
	Hue        Extent
	Saturation Extent
	Value      Extent
}

// Stats computes a Summary. An empty table has zero extents.
func Stats(p Palette) Summary {
	s := Summary{Count: len(p), Digest: Digest(p)}
	if len(p) == 0 {
		return s
	}

	inf := Extent{Min: math.Inf(1), Max: math.Inf(-1)}
	s.Hue, s.Saturation, s.Value = inf, inf, inf

	seen := make(map[Color]struct{}, len(p))
	for _, c := range p {
		if _, ok := seen[c]; ok {
			s.Duplicates++
			continue
		}
		seen[c] = struct{}{}

		h, sat, v := c.Colorful().Hsv()
		s.Hue.add(h)
		s.Saturation.add(sat)
		s.Value.add(v)
	}
	s.Unique = len(seen)
	return s
}
