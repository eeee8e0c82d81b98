package lcg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeed42(t *testing.T) {
	g := New(42)
	got := g.Generate(5)

	states := []uint32{1083814271, 375165136, 1696935405, 2881730150, 3221346955}
	want := make([]float64, len(states))
	for i, x := range states {
		want[i] = float64(x) / (1 << 32)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Generate(5) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0.2523451743181795, got[0])
	assert.Equal(t, states[4], g.State())
}

func TestRecurrenceWraps(t *testing.T) {
	x := uint64(42)
	g := New(42)
	for i := 0; i < 1000; i++ {
		x = (1664525*x + 1013904221) % (1 << 32)
		require.Equal(t, uint32(x), g.Uint32(), "draw %d", i)
	}
}

func TestStateContinuity(t *testing.T) {
	split := New(7)
	joined := append(split.Generate(300), split.Generate(700)...)

	whole := New(7).Generate(1000)
	if diff := cmp.Diff(whole, joined); diff != "" {
		t.Fatalf("split generation diverged (-whole +split):\n%s", diff)
	}
}

func TestDeterministic(t *testing.T) {
	assert.Equal(t, New(123456).Generate(2048), New(123456).Generate(2048))
	assert.NotEqual(t, New(1).Generate(16), New(2).Generate(16))
}

func TestGenerateEmpty(t *testing.T) {
	g := New(42)
	assert.Empty(t, g.Generate(0))
	assert.Empty(t, g.Generate(-3))
	assert.Equal(t, uint32(42), g.State())
}

func TestRange(t *testing.T) {
	g := New(1)
	for i, v := range g.Generate(100000) {
		if v < 0 || v >= 1 {
			t.Fatal("out of limits: ", i, v)
		}
	}
}

func TestSeed(t *testing.T) {
	g := New(42)
	first := g.Generate(10)
	g.Seed(42)
	assert.Equal(t, first, g.Generate(10))
}

func BenchmarkGenerate(b *testing.B) {
	g := New(42)
	for i := 0; i < b.N; i++ {
		g.Generate(1000)
	}
}
