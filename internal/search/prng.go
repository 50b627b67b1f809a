// Package search implements static evaluation, heuristic move ordering and
// the fixed-depth alpha-beta search that selects computer moves, together
// with the seeded generator used for reproducible tie-breaking.
package search

// Uniform is a source of uniformly distributed floats in [0, 1). Both the
// seeded LCG and math/rand's *Rand satisfy it; each AI invocation owns its
// instance, there is no shared generator.
type Uniform interface {
	Float64() float64
}

// LCG is a 32-bit linear-congruential generator. For a fixed seed it
// produces a fixed sequence, which makes tie-breaking in move ordering and
// root move selection reproducible.
type LCG struct {
	state uint32
}

// NewLCG creates a generator with the given seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Float64 advances the generator and returns the next value in [0, 1).
func (g *LCG) Float64() float64 {
	g.state = g.state*1664525 + 1013904223
	return float64(g.state) / (1 << 32)
}
