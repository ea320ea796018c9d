// merge.go — Overlay partial presets and resolve per-category configs.
package preset

import (
	"maps"

	"github.com/xob0t/GoSwatch/pkg/palette"
)

// Merge returns base with every field set in over applied on top. Neither
// argument is modified. Category entries merge field by field.
func Merge(base, over *Preset) *Preset {
	out := *base
	out.Categories = maps.Clone(base.Categories)
	if over == nil {
		return &out
	}

	if over.Name != "" {
		out.Name = over.Name
	}
	if over.Description != "" {
		out.Description = over.Description
	}
	if over.Saturation != nil {
		out.Saturation = over.Saturation
	}
	if over.Value != nil {
		out.Value = over.Value
	}
	if over.Dedup != nil {
		out.Dedup = over.Dedup
	}
	if over.Seed.IsSet() {
		out.Seed = over.Seed
	}
	if over.Shuffler != "" {
		out.Shuffler = over.Shuffler
	}

	if len(over.Categories) > 0 && out.Categories == nil {
		out.Categories = make(map[string]CategorySpec, len(over.Categories))
	}
	for name, spec := range over.Categories {
		merged := out.Categories[name]
		mergeCategory(&merged, spec)
		out.Categories[name] = merged
	}
	return &out
}

func mergeCategory(base *CategorySpec, over CategorySpec) {
	if over.Hue != nil {
		base.Hue = over.Hue
	}
	if over.Saturation != nil {
		base.Saturation = over.Saturation
	}
	if over.Value != nil {
		base.Value = over.Value
	}
}

// Resolve produces the generator configuration of one category.
// Unset ranges are empty and so yield no colors.
func Resolve(p *Preset, cat palette.Category) (palette.Config, error) {
	shuffler, err := palette.ParseShuffler(p.Shuffler)
	if err != nil {
		return palette.Config{}, err
	}

	cfg := palette.Config{
		Hue:      palette.DefaultHue[cat],
		Seed:     p.Seed.Value(),
		Shuffler: shuffler,
	}
	if p.Saturation != nil {
		cfg.Saturation = *p.Saturation
	}
	if p.Value != nil {
		cfg.Value = *p.Value
	}
	if p.Dedup != nil {
		cfg.Dedup = *p.Dedup
	}

	spec := p.Categories[cat.String()]
	if spec.Hue != nil {
		cfg.Hue = *spec.Hue
	}
	if spec.Saturation != nil {
		cfg.Saturation = *spec.Saturation
	}
	if spec.Value != nil {
		cfg.Value = *spec.Value
	}
	return cfg, nil
}
