// loader.go — Resolve presets by name or path and read environment overrides.
package preset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/xob0t/GoSwatch/internal/logger"
	"github.com/xob0t/GoSwatch/pkg/palette"
)

var log = logger.New("preset")

// ErrUnknownPreset is returned when a name is neither built in nor a file.
var ErrUnknownPreset = errors.New("unknown preset")

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "goswatch"

// Load returns a built-in preset by name, or parses the file at nameOrPath
// and merges it onto the default preset. Empty selects the default.
func Load(nameOrPath string) (*Preset, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultName
	}
	if p, ok := Builtin(nameOrPath); ok {
		log.Debug("using built-in preset %q", nameOrPath)
		return p, nil
	}

	if _, err := os.Stat(nameOrPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w %q (built-in: %s)", ErrUnknownPreset, nameOrPath, strings.Join(BuiltinNames(), ", "))
		}
		return nil, fmt.Errorf("stat preset: %w", err)
	}

	file, err := ParseFile(nameOrPath)
	if err != nil {
		return nil, err
	}
	base, _ := Builtin(DefaultName)
	p := Merge(base, file)
	if file.Name == "" {
		p.Name = nameOrPath
	}
	log.Debug("loaded preset %q from %s", p.Name, nameOrPath)
	return p, nil
}

// Env holds settings read from GOSWATCH_* environment variables.
type Env struct {
	Preset   string `envconfig:"PRESET"`
	Seed     string `envconfig:"SEED"`
	Shuffler string `envconfig:"SHUFFLER"`
	Dedup    *bool  `envconfig:"DEDUP"`
	Dir      string `envconfig:"DIR"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	NoColor  bool   `envconfig:"NO_COLOR"`
}

// LoadEnv reads the environment.
func LoadEnv() (*Env, error) {
	var e Env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}
	return &e, nil
}

// Overrides converts the preset-related variables into a partial preset.
func (e *Env) Overrides() (*Preset, error) {
	over := &Preset{Shuffler: e.Shuffler, Dedup: e.Dedup}
	if e.Seed != "" {
		seed, err := ParseSeed(e.Seed)
		if err != nil {
			return nil, fmt.Errorf("GOSWATCH_SEED: %w", err)
		}
		over.Seed = seed
	}
	if e.Shuffler != "" {
		if _, err := palette.ParseShuffler(e.Shuffler); err != nil {
			return nil, fmt.Errorf("GOSWATCH_SHUFFLER: %w", err)
		}
	}
	return over, nil
}
