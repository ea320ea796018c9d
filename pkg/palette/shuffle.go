// shuffle.go — Seeded Fisher–Yates permutations.
package palette

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/xob0t/GoSwatch/pkg/pyrand"
)

// Shuffler names the pseudorandom source behind a shuffle.
type Shuffler string

const (
	// ShufflerPCG drives the shuffle with math/rand/v2's PCG.
	ShufflerPCG Shuffler = "pcg"
	// ShufflerMT19937 reproduces CPython's random.Random(seed).shuffle.
	ShufflerMT19937 Shuffler = "mt19937"
)

// ParseShuffler validates a shuffler name. Empty selects PCG.
func ParseShuffler(s string) (Shuffler, error) {
	switch Shuffler(s) {
	case "", ShufflerPCG:
		return ShufflerPCG, nil
	case ShufflerMT19937:
		return ShufflerMT19937, nil
	}
	return "", fmt.Errorf("unknown shuffler %q (valid: pcg, mt19937)", s)
}

// Shuffle permutes p in place. The permutation depends only on the seed, the
// shuffler, and len(p).
func Shuffle(p Palette, seed uint64, kind Shuffler) error {
	swap := func(i, j int) { p[i], p[j] = p[j], p[i] }

	switch kind {
	case "", ShufflerPCG:
		src := rand.NewPCG(seed, seed)
		for i := len(p) - 1; i > 0; i-- {
			swap(i, int(bounded(src, uint64(i)+1)))
		}
	case ShufflerMT19937:
		pyrand.New(seed).Shuffle(len(p), swap)
	default:
		return fmt.Errorf("unknown shuffler %q", kind)
	}
	return nil
}

// bounded draws uniformly from [0, n) with Lemire's multiply-and-reject.
func bounded(src rand.Source, n uint64) uint64 {
	hi, lo := bits.Mul64(src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(src.Uint64(), n)
		}
	}
	return hi
}

// NewSeed returns a seed from the process random source.
func NewSeed() uint64 {
	return rand.Uint64()
}
