// hsv.go — HSV to 8-bit RGB conversion.
package palette

// Scales of the integer HSV grid.
const (
	MaxHue        = 360
	MaxSaturation = 100
	MaxValue      = 100
)

// HSVToRGB is the six-sector conversion with h, s, v in [0, 1]. The float64
// conversions keep the compiler from fusing multiply-adds, so every
// architecture rounds the intermediates the same way and truncation later
// lands on the same byte.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h6 := float64(h * 6)
	i := int(h6)
	f := h6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - float64(s*f))
	t := v * (1 - float64(s*(1-f)))

	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// FromHSV converts integer grid coordinates (degrees, percent, percent) to a
// Color. Channels are truncated toward zero, never rounded.
func FromHSV(hue, sat, val int) Color {
	r, g, b := HSVToRGB(
		float64(hue)/MaxHue,
		float64(sat)/MaxSaturation,
		float64(val)/MaxValue,
	)
	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

func channel(x float64) uint8 {
	x = min(max(x, 0), 1)
	return uint8(float64(255 * x))
}
