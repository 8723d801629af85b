package securerand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norman-ai/utils"
)

// scriptedSource replays a fixed byte sequence, for exercising the
// rejection path deterministically.
type scriptedSource struct {
	data []byte
}

func (s *scriptedSource) Next(n int) []byte {
	out := s.data[:n]
	s.data = s.data[n:]
	return out
}

func TestNewIntGenerator_Bounds(t *testing.T) {
	_, err := NewIntGenerator(10, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidBounds)

	_, err = NewIntGenerator(10, 1)
	assert.ErrorIs(t, err, utils.ErrInvalidBounds)
}

func TestIntGenerator_WithinRange(t *testing.T) {
	gen, err := NewIntGenerator(1, 100)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		n := gen.Generate()
		assert.GreaterOrEqual(t, n, int64(1))
		assert.LessOrEqual(t, n, int64(100))
	}
}

func TestIntGenerator_NegativeRange(t *testing.T) {
	gen, err := NewIntGenerator(-50, -10)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		n := gen.Generate()
		assert.GreaterOrEqual(t, n, int64(-50))
		assert.LessOrEqual(t, n, int64(-10))
	}
}

func TestIntGenerator_RejectsBiasedDraws(t *testing.T) {
	// Range [0, 2] needs one byte; 256 % 3 == 1, so 0xFF is the single
	// biased value and must be discarded in favor of the next draw.
	gen, err := NewIntGenerator(0, 2, WithSource(&scriptedSource{data: []byte{0xFF, 0x05}}))
	require.NoError(t, err)

	assert.Equal(t, int64(2), gen.Generate()) // 5 % 3
}

func TestIntGenerator_DrawWidth(t *testing.T) {
	// 256 values need 9 bits, so draws widen to two bytes.
	gen, err := NewIntGenerator(0, 255, WithSource(&scriptedSource{data: []byte{0x01, 0x2A}}))
	require.NoError(t, err)

	assert.Equal(t, 2, gen.bytesNeeded)
	assert.Equal(t, int64(0x012A%256), gen.Generate())
}

func TestIntGenerator_FullDomain(t *testing.T) {
	gen, err := NewIntGenerator(math.MinInt64, math.MaxInt64,
		WithSource(&scriptedSource{data: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}}))
	require.NoError(t, err)

	// All 64 bits set reinterprets as -1 in the signed domain.
	assert.Equal(t, int64(-1), gen.Generate())
}

func TestIntGenerator_SmallRangeDistribution(t *testing.T) {
	gen, err := NewIntGenerator(0, 1)
	require.NoError(t, err)

	counts := [2]int{}
	for i := 0; i < 2000; i++ {
		counts[gen.Generate()]++
	}

	// Loose sanity bound; a fair coin misses this only astronomically rarely.
	assert.Greater(t, counts[0], 700)
	assert.Greater(t, counts[1], 700)
}
