package bench

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/tutils/prngbench/rng"
	"github.com/tutils/prngbench/rng/lcg"
	"github.com/tutils/prngbench/rng/mt19937"
)

// Kind selects a generator implementation.
type Kind string

const (
	LCG             Kind = "lcg"
	MersenneTwister Kind = "mt19937"
)

// Kinds lists every supported generator in report order.
var Kinds = []Kind{LCG, MersenneTwister}

// ErrUnknownGenerator is returned for a generator name that is not supported.
var ErrUnknownGenerator = errors.New("unknown generator")

// ParseKind accepts the canonical names and a few common aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lcg":
		return LCG, nil
	case "mt", "mt19937", "mersenne", "mersenne-twister":
		return MersenneTwister, nil
	}
	return "", errors.Wrapf(ErrUnknownGenerator, "%q", s)
}

// ParseKinds parses a list of generator names, dropping duplicates.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	seen := make(map[Kind]bool)
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// NewGenerator returns a fresh generator of the given kind.
func NewGenerator(kind Kind, seed uint32) (rng.Uint32Source, error) {
	switch kind {
	case LCG:
		return lcg.New(seed), nil
	case MersenneTwister:
		return mt19937.New(seed), nil
	}
	return nil, errors.Wrapf(ErrUnknownGenerator, "%q", string(kind))
}
