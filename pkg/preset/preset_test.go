package preset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/xob0t/GoSwatch/pkg/palette"
)

func writePreset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuiltinResolve(t *testing.T) {
	tests := []struct {
		name     string
		sat, val palette.Range
		dedup    bool
		seeded   bool
		shuffler palette.Shuffler
	}{
		{"full", palette.Range{Lo: 20, Hi: 100}, palette.Range{Lo: 20, Hi: 100}, false, false, palette.ShufflerPCG},
		{"dim", palette.Range{Lo: 20, Hi: 100}, palette.Range{Lo: 20, Hi: 80}, false, false, palette.ShufflerPCG},
		{"stable", palette.Range{Lo: 50, Hi: 80}, palette.Range{Lo: 50, Hi: 100}, true, true, palette.ShufflerMT19937},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Load(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			for _, cat := range palette.Categories {
				cfg, err := Resolve(p, cat)
				if err != nil {
					t.Fatal(err)
				}
				if cfg.Hue != palette.DefaultHue[cat] {
					t.Errorf("%s hue = %v, want %v", cat, cfg.Hue, palette.DefaultHue[cat])
				}
				if cfg.Saturation != tt.sat || cfg.Value != tt.val {
					t.Errorf("%s sat/val = %v/%v, want %v/%v", cat, cfg.Saturation, cfg.Value, tt.sat, tt.val)
				}
				if cfg.Dedup != tt.dedup || (cfg.Seed != nil) != tt.seeded || cfg.Shuffler != tt.shuffler {
					t.Errorf("%s dedup=%v seed=%v shuffler=%v", cat, cfg.Dedup, cfg.Seed, cfg.Shuffler)
				}
			}
		})
	}
}

func TestLoadDefaultIsStable(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != DefaultName {
		t.Errorf("default preset = %q", p.Name)
	}
	if v := p.Seed.Value(); v == nil || *v != StableSeed {
		t.Errorf("default seed = %v", p.Seed)
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Load error = %v, want ErrUnknownPreset", err)
	}
}

func TestLoadFileInheritsDefaults(t *testing.T) {
	path := writePreset(t, `
name: bright
value: {lo: 70, hi: 100}
seed: none
categories:
  seas:
    hue: {lo: 180, hi: 200}
    saturation: {lo: 60, hi: 61}
`)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "bright" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Seed.Value() != nil || !p.Seed.IsSet() {
		t.Errorf("seed = %v, want none", p.Seed)
	}

	sea, err := Resolve(p, palette.Sea)
	if err != nil {
		t.Fatal(err)
	}
	want := palette.Config{
		Hue:        palette.Range{Lo: 180, Hi: 200},
		Saturation: palette.Range{Lo: 60, Hi: 61},
		Value:      palette.Range{Lo: 70, Hi: 100},
		Dedup:      true,
		Shuffler:   palette.ShufflerMT19937,
	}
	if sea.Hue != want.Hue || sea.Saturation != want.Saturation || sea.Value != want.Value ||
		sea.Dedup != want.Dedup || sea.Shuffler != want.Shuffler || sea.Seed != nil {
		t.Errorf("sea config = %+v, want %+v", sea, want)
	}

	land, _ := Resolve(p, palette.Land)
	if land.Hue != palette.DefaultHue[palette.Land] || land.Saturation != (palette.Range{Lo: 50, Hi: 80}) {
		t.Errorf("land config = %+v", land)
	}
}

func TestLoadJSONPreset(t *testing.T) {
	path := writePreset(t, `{"name": "json", "seed": 7, "shuffler": "pcg", "dedup": false}`)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if v := p.Seed.Value(); v == nil || *v != 7 {
		t.Errorf("seed = %v, want 7", p.Seed)
	}
	if p.Shuffler != "pcg" || *p.Dedup {
		t.Errorf("shuffler=%q dedup=%v", p.Shuffler, *p.Dedup)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte("name: x\nhues: 3\n")); err == nil {
		t.Error("expected error for unknown field")
	}
	if _, err := Parse([]byte("seed: -4\n")); err == nil {
		t.Error("expected error for negative seed")
	}
}

func TestExampleYAMLParsesAndValidates(t *testing.T) {
	p, err := Parse([]byte(ExampleYAML()))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Validate(p); err != nil {
		t.Fatal(err)
	}
	if p.Categories["lands"].Value == nil {
		t.Error("example should carry a per-category value override")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  string
		warnings int
	}{
		{"ok", "saturation: {lo: 0, hi: 100}\n", "", 0},
		{"hue out of scale", "categories:\n  lands:\n    hue: {lo: 10, hi: 400}\n", "categories[lands].hue.hi", 0},
		{"value out of scale", "value: {lo: -1, hi: 50}\n", "value.lo", 0},
		{"unknown category", "categories:\n  rivers:\n    hue: {lo: 1, hi: 2}\n", "rivers", 0},
		{"unknown shuffler", "shuffler: lcg\n", "shuffler", 0},
		{"category value out of scale", "categories:\n  seas:\n    value: {lo: 0, hi: 101}\n", "categories[seas].value.hi", 0},
		{"empty range warns", "value: {lo: 60, hi: 60}\n", "", 1},
		{"inverted hue warns", "categories:\n  seas:\n    hue: {lo: 200, hi: 100}\n", "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse([]byte(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			warnings, err := Validate(p)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Validate error = %v, want mention of %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(warnings) != tt.warnings {
				t.Errorf("warnings = %v, want %d", warnings, tt.warnings)
			}
		})
	}
}

func TestMergeLeavesInputsUntouched(t *testing.T) {
	base, _ := Builtin("full")
	over := &Preset{
		Dedup:      ptr(true),
		Seed:       FixedSeed(3),
		Categories: map[string]CategorySpec{"lakes": {Value: &palette.Range{Lo: 1, Hi: 2}}},
	}
	out := Merge(base, over)

	if !*out.Dedup || *out.Seed.Value() != 3 {
		t.Errorf("merged dedup=%v seed=%v", *out.Dedup, out.Seed)
	}
	lakes := out.Categories["lakes"]
	if lakes.Hue == nil || *lakes.Hue != palette.DefaultHue[palette.Lake] {
		t.Errorf("lakes hue lost in merge: %+v", lakes)
	}
	if base.Categories["lakes"].Value != nil || *base.Dedup || base.Seed.Value() != nil {
		t.Error("Merge modified its base")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GOSWATCH_SEED", "none")
	t.Setenv("GOSWATCH_SHUFFLER", "pcg")
	t.Setenv("GOSWATCH_DEDUP", "false")
	t.Setenv("GOSWATCH_DIR", "/tmp/out")

	e, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if e.Dir != "/tmp/out" {
		t.Errorf("Dir = %q", e.Dir)
	}
	over, err := e.Overrides()
	if err != nil {
		t.Fatal(err)
	}

	base, _ := Builtin("stable")
	p := Merge(base, over)
	cfg, err := Resolve(p, palette.Land)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != nil || cfg.Dedup || cfg.Shuffler != palette.ShufflerPCG {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestEnvBadSeed(t *testing.T) {
	e := &Env{Seed: "abc"}
	if _, err := e.Overrides(); err == nil {
		t.Error("expected error for non-numeric seed")
	}
}

func TestSeedYAMLRoundTrip(t *testing.T) {
	p := &Preset{Name: "x", Seed: FixedSeed(42)}
	out, err := yaml.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "seed: 42") {
		t.Errorf("marshaled preset = %s", out)
	}

	unset, err := yaml.Marshal(&Preset{Name: "y"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(unset), "seed") {
		t.Errorf("unset seed should be omitted: %s", unset)
	}
}

func TestFormatSchema(t *testing.T) {
	p, _ := Load("stable")
	s := FormatSchema(p)
	for _, want := range []string{"Preset: stable", "lands.bin", "[70,155)", "Seed: 1622487670"} {
		if !strings.Contains(s, want) {
			t.Errorf("schema missing %q:\n%s", want, s)
		}
	}
}

// Tables built by the Python tool with random.Random(1622487670).
func TestStableMatchesPythonTables(t *testing.T) {
	tests := []struct {
		cat    palette.Category
		size   int
		digest uint64
		first  string
	}{
		{palette.Land, 382500, 0xd99607778b7e547c, "#659640"},
		{palette.Sea, 360000, 0xcd60f578c4e544ac, "#5ab7bc"},
		{palette.Lake, 355500, 0x0bf77b92ee9400ac, "#873783"},
		{palette.Unknown, 310500, 0xd3e8dfda7ac3b5ad, "#8c2725"},
	}
	p, _ := Builtin("stable")
	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			cfg, err := Resolve(p, tt.cat)
			if err != nil {
				t.Fatal(err)
			}
			colors, err := palette.Generate(cfg)
			if err != nil {
				t.Fatal(err)
			}
			if got := len(colors) * palette.RecordSize; got != tt.size {
				t.Fatalf("size = %d, want %d", got, tt.size)
			}
			if got := colors[0].Hex(); got != tt.first {
				t.Errorf("first color = %s, want %s", got, tt.first)
			}
			if got := palette.Digest(colors); got != tt.digest {
				t.Errorf("digest = %016x, want %016x", got, tt.digest)
			}
		})
	}
}
