// Package mt19937 implements the 32-bit Mersenne Twister.
//
// The state array is seeded eagerly. Every Generate call restarts its block
// count, twisting before its first value and before each further 624 values,
// so a call never continues the block left by the previous one. Uint32 keeps
// the usual cursor and matches the MT19937 reference implementation seeded
// with init_genrand.
package mt19937

import (
	"github.com/tutils/prngbench/rng"
)

var _ rng.Uint32Source = (*Generator)(nil)

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	initMultiplier = 1812433253
)

// Name is the generator's display name.
const Name = "Mersenne Twister"

// Generator is an MT19937 state: 624 words and an extraction cursor.
// index == n means the next extraction twists first.
type Generator struct {
	mt    [n]uint32
	index int

	twists int
}

// New returns a generator seeded with seed.
func New(seed uint32) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// Name implements rng.Generator
func (g *Generator) Name() string {
	return Name
}

// Seed rebuilds the state array from seed and rewinds the cursor.
func (g *Generator) Seed(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < n; i++ {
		prev := g.mt[i-1]
		g.mt[i] = initMultiplier*(prev^(prev>>30)) + uint32(i)
	}
	g.index = n
	g.twists = 0
}

// Twists reports how many times the state array has been regenerated since
// the last Seed.
func (g *Generator) Twists() int {
	return g.twists
}

// twist regenerates the whole array in place. Entries are rewritten in
// increasing index order; for wrapped indices mt[(i+1)%n] and mt[(i+m)%n]
// already hold values from this pass.
func (g *Generator) twist() {
	for i := 0; i < n; i++ {
		y := (g.mt[i] & upperMask) + (g.mt[(i+1)%n] & lowerMask)
		g.mt[i] = g.mt[(i+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			g.mt[i] ^= matrixA
		}
	}
	g.index = 0
	g.twists++
}

func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint32 returns the next tempered word.
func (g *Generator) Uint32() uint32 {
	if g.index >= n {
		g.twist()
	}
	y := g.mt[g.index]
	g.index++
	return temper(y)
}

// Float64 returns the next value in [0,1).
func (g *Generator) Float64() float64 {
	return rng.ToFloat(g.Uint32())
}

// Generate implements rng.Generator. The state array is twisted before the
// first value of every call, even when the previous call stopped mid-block.
func (g *Generator) Generate(count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	g.index = n
	out := make([]float64, count)
	for i := range out {
		out[i] = g.Float64()
	}
	return out
}
