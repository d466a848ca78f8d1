package core

import "math/rand/v2"

// RNG wraps math/rand/v2 so engines reseed deterministically.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// OneIn reports true with probability 1/n. n <= 1 always reports true.
func (r *RNG) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}

// Scatter sets each byte of buf to on with probability 1/n and to 0
// otherwise.
func (r *RNG) Scatter(buf []uint8, n int, on uint8) {
	for i := range buf {
		if r.OneIn(n) {
			buf[i] = on
			continue
		}
		buf[i] = 0
	}
}
