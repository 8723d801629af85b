package securerand

import (
	"math"
	"math/bits"

	"github.com/norman-ai/utils"
)

// IntGenerator produces uniformly distributed integers within an inclusive
// range. Raw keystream values that would introduce modulo bias fall into a
// rejection zone and are discarded, so every integer in the range is
// equally likely.
type IntGenerator struct {
	source Source

	lower     int64
	rangeSize uint64 // 0 encodes the full uint64 domain

	bytesNeeded int

	// Values >= threshold are rejected. acceptAll short-circuits the check
	// when the drawn width divides the range evenly.
	threshold uint64
	acceptAll bool
}

// Option configures an IntGenerator.
type Option func(*IntGenerator)

// WithSource injects the entropy source. The default is the process-wide
// Shared stream.
func WithSource(source Source) Option {
	return func(g *IntGenerator) {
		g.source = source
	}
}

// NewIntGenerator creates a generator for the inclusive range
// [lower, upper]. The lower bound must be strictly smaller than the upper
// bound.
//
// Example:
//
//	gen, err := securerand.NewIntGenerator(1, 100)
//	if err != nil {
//	    return err
//	}
//	n := gen.Generate() // uniform in [1, 100]
func NewIntGenerator(lower, upper int64, opts ...Option) (*IntGenerator, error) {
	if lower >= upper {
		return nil, utils.NewValidationError("securerand.NewIntGenerator", utils.ErrInvalidBounds).
			WithContext(map[string]any{"lower": lower, "upper": upper})
	}

	g := &IntGenerator{
		lower:     lower,
		rangeSize: uint64(upper) - uint64(lower) + 1,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.source == nil {
		source, err := Shared()
		if err != nil {
			return nil, err
		}
		g.source = source
	}

	if g.rangeSize == 0 {
		// Full 64-bit domain; every draw is in range.
		g.bytesNeeded = 8
		g.acceptAll = true
		return g, nil
	}

	bitsNeeded := bits.Len64(g.rangeSize)
	g.bytesNeeded = (bitsNeeded + 7) / 8

	if g.bytesNeeded < 8 {
		maxValue := uint64(1) << (8 * g.bytesNeeded)
		g.threshold = maxValue - maxValue%g.rangeSize
		g.acceptAll = g.threshold == maxValue
		return g, nil
	}

	// Eight-byte draws: 2^64 does not fit in uint64, so compute
	// 2^64 mod rangeSize through MaxUint64.
	remainder := (math.MaxUint64%g.rangeSize + 1) % g.rangeSize
	if remainder == 0 {
		g.acceptAll = true
	} else {
		g.threshold = math.MaxUint64 - remainder + 1
	}
	return g, nil
}

// Generate returns the next uniformly distributed integer in the
// configured range. It loops until a draw lands outside the rejection
// zone; the expected number of draws is below two.
func (g *IntGenerator) Generate() int64 {
	for {
		raw := g.source.Next(g.bytesNeeded)

		var value uint64
		for _, b := range raw {
			value = value<<8 | uint64(b)
		}

		if !g.acceptAll && value >= g.threshold {
			continue
		}

		if g.rangeSize == 0 {
			return int64(value)
		}
		return int64(uint64(g.lower) + value%g.rangeSize)
	}
}
