package palette

import (
	"slices"
	"testing"
)

func TestEnumerateSmallGrid(t *testing.T) {
	p := Enumerate(Range{70, 72}, Range{50, 52}, Range{50, 52})
	if len(p) != 8 {
		t.Fatalf("got %d colors, want 8", len(p))
	}
	if p[0] != FromHSV(70, 50, 50) {
		t.Errorf("first color = %v, want hue-major start %v", p[0], FromHSV(70, 50, 50))
	}
	if p[1] != FromHSV(70, 50, 51) {
		t.Errorf("second color = %v, value should vary fastest", p[1])
	}
	if p[7] != FromHSV(71, 51, 51) {
		t.Errorf("last color = %v, want %v", p[7], FromHSV(71, 51, 51))
	}
	if n := len(p.Bytes()); n != 24 {
		t.Errorf("serialized length = %d, want 24", n)
	}
}

func TestEnumerateEmptyRanges(t *testing.T) {
	tests := []struct {
		name          string
		hue, sat, val Range
	}{
		{"empty hue", Range{70, 70}, Range{50, 52}, Range{50, 52}},
		{"empty saturation", Range{70, 80}, Range{60, 60}, Range{50, 52}},
		{"inverted value", Range{70, 80}, Range{50, 52}, Range{90, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := Enumerate(tt.hue, tt.sat, tt.val); len(p) != 0 {
				t.Errorf("got %d colors, want 0", len(p))
			}
		})
	}
}

func TestEnumerateStaysInHueBand(t *testing.T) {
	for _, cat := range Categories {
		band := DefaultHue[cat]
		p := Enumerate(band, Range{60, 61}, Range{70, 71})
		if len(p) != band.Len() {
			t.Fatalf("%s: got %d colors, want %d", cat, len(p), band.Len())
		}
		for i, c := range p {
			if want := FromHSV(band.Lo+i, 60, 70); c != want {
				t.Fatalf("%s: color %d = %v, want hue %d color %v", cat, i, c, band.Lo+i, want)
			}
		}
	}
}

func TestDedupKeepsFirstOccurrence(t *testing.T) {
	a, b, c := Color{1, 2, 3}, Color{4, 5, 6}, Color{7, 8, 9}
	got := Dedup(Palette{a, b, a, c, b, c})
	if want := (Palette{a, b, c}); !slices.Equal(got, want) {
		t.Errorf("Dedup = %v, want %v", got, want)
	}
}

func TestDedupRemovesGridCollisions(t *testing.T) {
	// Value 0 maps every hue and saturation to black.
	p := Enumerate(Range{0, 10}, Range{0, 5}, Range{0, 5})
	d := Dedup(p)
	if len(d) >= len(p) {
		t.Fatalf("expected collisions, got %d of %d unique", len(d), len(p))
	}
	seen := map[Color]bool{}
	for _, c := range d {
		if seen[c] {
			t.Fatalf("duplicate %v after Dedup", c)
		}
		seen[c] = true
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{"20:100", Range{20, 100}, false},
		{" 5 : 9 ", Range{5, 9}, false},
		{"70", Range{}, true},
		{"a:b", Range{}, true},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
