// Package preset loads the build configuration of the color tables:
// built-in presets, YAML/JSON preset files, environment and flag overrides.
package preset

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xob0t/GoSwatch/pkg/palette"
)

// Preset is the top-level structure of a preset file. Nil fields inherit
// from the preset it is merged onto.
type Preset struct {
	Name        string                  `yaml:"name"`
	Description string                  `yaml:"description,omitempty"`
	Saturation  *palette.Range          `yaml:"saturation,omitempty"`
	Value       *palette.Range          `yaml:"value,omitempty"`
	Dedup       *bool                   `yaml:"dedup,omitempty"`
	Seed        Seed                    `yaml:"seed,omitempty"`
	Shuffler    string                  `yaml:"shuffler,omitempty"`
	Categories  map[string]CategorySpec `yaml:"categories,omitempty"`
}

// CategorySpec configures one table. Saturation and Value override the
// preset-wide ranges when set.
type CategorySpec struct {
	Hue        *palette.Range `yaml:"hue,omitempty"`
	Saturation *palette.Range `yaml:"saturation,omitempty"`
	Value      *palette.Range `yaml:"value,omitempty"`
}

// Seed is an optional shuffle seed that can also be explicitly cleared.
//
//	seed: 1622487670   fixed order
//	seed: none         fresh order every run
//	(absent)           inherit
type Seed struct {
	set   bool
	value *uint64
}

// FixedSeed returns a set seed.
func FixedSeed(v uint64) Seed {
	return Seed{set: true, value: &v}
}

// NoSeed returns a seed explicitly set to "none".
func NoSeed() Seed {
	return Seed{set: true}
}

// IsSet reports whether the seed was specified at all.
func (s Seed) IsSet() bool { return s.set }

// Value returns the fixed seed, or nil for an unseeded shuffle.
func (s Seed) Value() *uint64 {
	if s.value == nil {
		return nil
	}
	v := *s.value
	return &v
}

func (s Seed) String() string {
	switch {
	case !s.set:
		return "(inherit)"
	case s.value == nil:
		return "none"
	}
	return strconv.FormatUint(*s.value, 10)
}

// ParseSeed accepts a decimal seed or "none".
func ParseSeed(str string) (Seed, error) {
	str = strings.TrimSpace(str)
	if strings.EqualFold(str, "none") {
		return NoSeed(), nil
	}
	v, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("invalid seed %q: want an unsigned integer or \"none\"", str)
	}
	return FixedSeed(v), nil
}

// UnmarshalYAML reads a scalar seed.
func (s *Seed) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: seed must be a scalar", value.Line)
	}
	parsed, err := ParseSeed(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = parsed
	return nil
}

// MarshalYAML writes the seed back in the form UnmarshalYAML accepts.
func (s Seed) MarshalYAML() (any, error) {
	switch {
	case !s.set:
		return nil, nil
	case s.value == nil:
		return "none", nil
	}
	return *s.value, nil
}

// IsZero lets omitempty drop an unset seed.
func (s Seed) IsZero() bool { return !s.set }
