// validator.go — Bounds checking and human-readable preset summaries.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xob0t/GoSwatch/pkg/palette"
)

var validate = validator.New()

type hueBounds struct {
	Lo int `validate:"min=0,max=360"`
	Hi int `validate:"min=0,max=360"`
}

type percentBounds struct {
	Lo int `validate:"min=0,max=100"`
	Hi int `validate:"min=0,max=100"`
}

type categoryBounds struct {
	Hue        *hueBounds     `validate:"omitempty"`
	Saturation *percentBounds `validate:"omitempty"`
	Value      *percentBounds `validate:"omitempty"`
}

type presetBounds struct {
	Shuffler   string                    `validate:"omitempty,oneof=pcg mt19937"`
	Saturation *percentBounds            `validate:"omitempty"`
	Value      *percentBounds            `validate:"omitempty"`
	Categories map[string]categoryBounds `validate:"dive,keys,oneof=lands seas lakes unknowns,endkeys"`
}

func toHue(r *palette.Range) *hueBounds {
	if r == nil {
		return nil
	}
	return &hueBounds{Lo: r.Lo, Hi: r.Hi}
}

func toPercent(r *palette.Range) *percentBounds {
	if r == nil {
		return nil
	}
	return &percentBounds{Lo: r.Lo, Hi: r.Hi}
}

// Validate rejects bounds outside their scale (hue 0..360, saturation and
// value 0..100), unknown category names and unknown shufflers. Empty or
// inverted ranges are legal and only produce warnings.
func Validate(p *Preset) (warnings []string, err error) {
	b := presetBounds{
		Shuffler:   p.Shuffler,
		Saturation: toPercent(p.Saturation),
		Value:      toPercent(p.Value),
		Categories: make(map[string]categoryBounds, len(p.Categories)),
	}
	for name, spec := range p.Categories {
		b.Categories[name] = categoryBounds{
			Hue:        toHue(spec.Hue),
			Saturation: toPercent(spec.Saturation),
			Value:      toPercent(spec.Value),
		}
	}

	var msgs []string
	if err := collect(validate.Struct(b), "", &msgs); err != nil {
		return nil, err
	}
	// Map values are structs behind a map, so check them one by one.
	for _, name := range sortedKeys(p.Categories) {
		prefix := fmt.Sprintf("categories[%s].", name)
		if err := collect(validate.Struct(b.Categories[name]), prefix, &msgs); err != nil {
			return nil, err
		}
	}
	if len(msgs) > 0 {
		return nil, fmt.Errorf("invalid preset %q: %s", p.Name, strings.Join(msgs, "; "))
	}

	empty := func(where string, r *palette.Range) {
		if r != nil && r.Len() == 0 {
			warnings = append(warnings, fmt.Sprintf("%s range %s is empty; no colors will be generated", where, r))
		}
	}
	empty("saturation", p.Saturation)
	empty("value", p.Value)
	for _, name := range sortedKeys(p.Categories) {
		spec := p.Categories[name]
		empty(name+" hue", spec.Hue)
		empty(name+" saturation", spec.Saturation)
		empty(name+" value", spec.Value)
	}
	return warnings, nil
}

// collect appends a description of each field error in err to msgs and
// returns err only when it is not a validation failure.
func collect(err error, prefix string, msgs *[]string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		*msgs = append(*msgs, describe(fe, prefix))
	}
	return nil
}

func describe(fe validator.FieldError, prefix string) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	field := prefix + strings.ToLower(ns)
	switch fe.Tag() {
	case "min", "max":
		scale := "100"
		if strings.Contains(field, "hue") {
			scale = "360"
		}
		return fmt.Sprintf("%s = %v must be between 0 and %s", field, fe.Value(), scale)
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", field, fe.Value(), fe.Param())
	}
	return fmt.Sprintf("%s: %s", field, fe.Tag())
}

func sortedKeys(m map[string]CategorySpec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormatSchema describes the effective configuration of every category.
func FormatSchema(p *Preset) string {
	var s strings.Builder
	fmt.Fprintf(&s, "Preset: %s\n", p.Name)
	if p.Description != "" {
		s.WriteString(p.Description + "\n")
	}
	fmt.Fprintf(&s, "Shuffler: %s  Seed: %s\n\n", p.Shuffler, p.Seed)

	for _, cat := range palette.Categories {
		cfg, err := Resolve(p, cat)
		if err != nil {
			fmt.Fprintf(&s, "  %-9s %v\n", cat.String()+":", err)
			continue
		}
		fmt.Fprintf(&s, "  %-9s hue %-10s sat %-10s val %-10s dedup=%-5t -> %s (%d grid points)\n",
			cat.String()+":", cfg.Hue, cfg.Saturation, cfg.Value, cfg.Dedup,
			cat.Filename(), cfg.Hue.Len()*cfg.Saturation.Len()*cfg.Value.Len())
	}
	return s.String()
}
