package maze

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// NewRNG returns a deterministic random source for seed. Two sources built
// from the same seed produce identical mazes.
func NewRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional; mazes must be reproducible.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "carve"), seedWord(seed, "theme")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// oddIn picks a uniformly random odd-stepped value lo, lo+2, ... below hi.
// ok is false when the range is empty.
func oddIn(rng *rand.Rand, lo, hi int) (v int, ok bool) {
	n := (hi - lo + 1) / 2
	if n <= 0 {
		return 0, false
	}
	return lo + 2*rng.IntN(n), true
}
