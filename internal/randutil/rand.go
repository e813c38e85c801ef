// Package randutil derives random sources from a single int64 seed, so a
// whole run (simulator workers included) replays from one number.
package randutil

import rand "math/rand/v2"

// New returns a *rand.Rand whose stream is fully determined by seed. PCG
// wants two 64-bit state words; both come out of a splitmix64 step so
// that adjacent seeds still yield unrelated streams.
func New(seed int64) *rand.Rand {
	lo := splitmix64(uint64(seed))
	hi := splitmix64(uint64(seed) + 0x9e3779b97f4a7c15)
	return rand.New(rand.NewPCG(lo, hi))
}

// splitmix64 is the finalizer of the splitmix64 generator, used here
// purely as a seed scrambler.
func splitmix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
