package rng

// Generator produces ordered sequences of floats in [0,1) from internal state.
// Implementations are not safe for concurrent use.
type Generator interface {
	Name() string
	// Generate returns count fresh values and advances the generator state.
	// A non-positive count returns an empty sample and leaves state untouched.
	Generate(count int) []float64
}

// Uint32Source is a generator exposing its raw 32-bit output
type Uint32Source interface {
	Generator
	Uint32() uint32
	Seed(seed uint32)
}

// scale maps a 32-bit word onto [0,1)
const scale = 1 << 32

// ToFloat converts a raw 32-bit output to a sample value.
func ToFloat(v uint32) float64 {
	return float64(v) / scale
}

// ToUint32 recovers the 32-bit word a sample value was derived from.
func ToUint32(v float64) uint32 {
	return uint32(v * scale)
}
