package palette

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"lands", Land},
		{"land", Land},
		{"SEAS", Sea},
		{"lake", Lake},
		{"unknowns", Unknown},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	for _, bad := range []string{"", "rivers", "l"} {
		if _, err := ParseCategory(bad); !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", bad, err)
		}
	}
}

func TestCategoryNames(t *testing.T) {
	if got := Sea.Filename(); got != "seas.bin" {
		t.Errorf("Sea.Filename() = %q", got)
	}
	if got := Unknown.Symbol(); got != "UNKNOWNS" {
		t.Errorf("Unknown.Symbol() = %q", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseHex("#74803f")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Color{0x74, 0x80, 0x3f}) {
		t.Errorf("ParseHex = %v", c)
	}
	if c.Hex() != "#74803f" {
		t.Errorf("Hex() = %q", c.Hex())
	}
	if _, err := ParseHex("#fff"); err == nil {
		t.Error("expected error for short hex")
	}
}

func TestStats(t *testing.T) {
	seed := uint64(4)
	p, err := Generate(Config{
		Hue:        DefaultHue[Land],
		Saturation: Range{50, 80},
		Value:      Range{50, 100},
		Seed:       &seed,
	})
	if err != nil {
		t.Fatal(err)
	}
	p = append(p, p[0])

	s := Stats(p)
	if s.Count != len(p) || s.Duplicates < 1 || s.Unique+s.Duplicates != s.Count {
		t.Errorf("counts: %+v", s)
	}
	if s.Hue.Min < 60 || s.Hue.Max > 165 {
		t.Errorf("hue extent %v outside the land band", s.Hue)
	}
	if s.Value.Max > 1 || s.Saturation.Min < 0.4 {
		t.Errorf("saturation %v / value %v out of range", s.Saturation, s.Value)
	}
	if s.Digest != Digest(p) {
		t.Error("digest mismatch")
	}

	if empty := Stats(nil); empty.Count != 0 || empty.Hue != (Extent{}) {
		t.Errorf("empty stats = %+v", empty)
	}
}
