// Package lcg implements the linear congruential generator
//
//	x(i+1) = (a*x(i) + c) mod 2^32
//
// with the Numerical Recipes constants a = 1664525, c = 1013904221.
// The modulus is the natural wraparound of uint32 arithmetic.
package lcg

import (
	"github.com/tutils/prngbench/rng"
)

var _ rng.Uint32Source = (*Generator)(nil)

const (
	a uint32 = 1664525
	c uint32 = 1013904221
)

// Name is the generator's display name.
const Name = "LCG"

// Generator holds the running state x. The state is not reset between
// Generate calls.
type Generator struct {
	x uint32
}

// New returns a generator whose initial state is seed.
func New(seed uint32) *Generator {
	return &Generator{x: seed}
}

// Name implements rng.Generator
func (g *Generator) Name() string {
	return Name
}

// Seed resets the state to seed.
func (g *Generator) Seed(seed uint32) {
	g.x = seed
}

// State returns the current value of x.
func (g *Generator) State() uint32 {
	return g.x
}

// Uint32 advances the recurrence and returns the new state.
func (g *Generator) Uint32() uint32 {
	g.x = a*g.x + c
	return g.x
}

// Float64 returns the next value in [0,1).
func (g *Generator) Float64() float64 {
	return rng.ToFloat(g.Uint32())
}

// Generate implements rng.Generator
func (g *Generator) Generate(count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = g.Float64()
	}
	return out
}
