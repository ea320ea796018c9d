// Package palette generates shuffled HSV color tables for province maps.
//
// A table is produced in one pass: enumerate the HSV grid of a category,
// optionally drop repeated byte triples, then shuffle with a seeded
// Fisher–Yates permutation.
package palette

import (
	"github.com/xob0t/GoSwatch/internal/logger"
)

var log = logger.New("palette")

// Config describes one table. Saturation and Value are percent scales.
type Config struct {
	Hue        Range
	Saturation Range
	Value      Range
	Dedup      bool
	// Seed fixes the shuffle order. Nil draws a fresh seed per run.
	Seed     *uint64
	Shuffler Shuffler
}

// Generate enumerates, deduplicates and shuffles according to cfg.
func Generate(cfg Config) (Palette, error) {
	log.Debug("enumerating hue %s, saturation %s, value %s", cfg.Hue, cfg.Saturation, cfg.Value)
	p := Enumerate(cfg.Hue, cfg.Saturation, cfg.Value)
	log.Info("Generated %d colors", len(p))

	if cfg.Dedup {
		log.Info("Removing duplicates...")
		p = Dedup(p)
	}

	seed := NewSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		log.Debug("no seed configured, using %d", seed)
	}

	log.Info("Shuffling %d colors...", len(p))
	if err := Shuffle(p, seed, cfg.Shuffler); err != nil {
		return nil, err
	}
	return p, nil
}
