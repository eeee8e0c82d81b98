package rng

import "math/rand"

var _ rand.Source = (*source)(nil)
var _ rand.Source64 = (*source)(nil)

type source struct {
	src Uint32Source
}

// NewSource exposes a 32-bit generator as a math/rand source, so it can drive
// rand.New for integer ranges and shuffles.
func NewSource(src Uint32Source) rand.Source64 {
	return &source{src: src}
}

// Seed implements rand.Source. Only the low 32 bits are used.
func (s *source) Seed(seed int64) {
	s.src.Seed(uint32(seed))
}

// Uint64 implements rand.Source64
func (s *source) Uint64() uint64 {
	hi := uint64(s.src.Uint32())
	lo := uint64(s.src.Uint32())
	return hi<<32 | lo
}

// Int63 implements rand.Source
func (s *source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
