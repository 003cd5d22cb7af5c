package hwpx

import "math/rand/v2"

// IDGenerator produces integer identifiers for structural elements that
// must be unique within one serialized document (tables, cell sub-lists).
//
// Each Document owns its own generator, so concurrent builds never share
// random state. The default generator draws from a wide random range;
// a seeded generator produces the same sequence for the same seed, which
// is what makes golden-file comparison of saved documents possible.
type IDGenerator struct {
	rng *rand.Rand
}

const (
	idRangeLow  = 100000000
	idRangeSpan = 900000000
)

// NewIDGenerator returns a generator with randomized state. Two independent
// generators produce different sequences with overwhelming probability.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededIDGenerator returns a deterministic generator: the same seed
// always yields the same ID sequence.
func NewSeededIDGenerator(seed uint64) *IDGenerator {
	return &IDGenerator{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Next returns the next identifier in [100000000, 999999999].
func (g *IDGenerator) Next() int {
	return idRangeLow + int(g.rng.Int64N(idRangeSpan))
}
