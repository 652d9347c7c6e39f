package cpu

import "math/rand"

// RandomSource supplies uniformly distributed bytes to Cxkk.
type RandomSource interface {
	Byte() uint8
}

type randSource struct {
	rnd *rand.Rand
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed int64) RandomSource {
	return &randSource{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func (r *randSource) Byte() uint8 {
	return uint8(r.rnd.Intn(256))
}
