package histogram

import (
	stderrors "errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchkit/loghist/errs"
)

func TestNewRejectsSmallBase(t *testing.T) {
	s, err := New(1, -3)
	assert.Nil(t, s)
	assert.True(t, stderrors.Is(err, errs.PreconditionViolation))
}

func TestEmptySketch(t *testing.T) {
	s, err := New(2, -3)
	require.NoError(t, err)

	assert.Equal(t, 0, s.BinCount())
	assert.Equal(t, uint64(0), s.Count())

	p := s.Percentiles()
	_, err = p.At(0.5)
	assert.True(t, stderrors.Is(err, errs.PreconditionViolation))
}

func TestSingleSample(t *testing.T) {
	s, err := New(2, -3)
	require.NoError(t, err)

	require.NoError(t, s.Update(1.0))
	assert.Equal(t, 1, s.BinCount())
	assert.Equal(t, uint64(1), s.Count())

	p := s.Percentiles()
	require.Equal(t, 1, p.Len())

	value, err := p.At(0.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, value)
}

func TestIdenticalSamplesNeverCompact(t *testing.T) {
	s, err := New(2, -3)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Update(1.0))
	}

	assert.Equal(t, 1, s.BinCount())
	assert.Equal(t, uint64(1000), s.Count())
	assert.Equal(t, -3, s.Exponent())
	assert.Equal(t, uint64(1000), s.counts[0])
}

func TestCompactionTrigger(t *testing.T) {
	s, err := New(2, 0)
	require.NoError(t, err)

	for i := 0; i <= 100; i++ {
		require.NoError(t, s.Update(float64(i)))
	}

	assert.GreaterOrEqual(t, s.Exponent(), 1)
	assert.LessOrEqual(t, s.BinCount(), BinCap)
	assert.Equal(t, uint64(101), s.Count())

	var sum uint64
	for _, c := range s.counts {
		sum += c
	}
	assert.Equal(t, uint64(101), sum)
}

func TestPercentileOutOfRange(t *testing.T) {
	s, err := New(2, -3)
	require.NoError(t, err)
	require.NoError(t, s.Update(5.0))

	p := s.Percentiles()
	_, err = p.At(1.0)
	assert.True(t, stderrors.Is(err, errs.PreconditionViolation))
	_, err = p.At(-0.1)
	assert.True(t, stderrors.Is(err, errs.PreconditionViolation))
}

func TestPercentileMonotonicity(t *testing.T) {
	s, err := New(2, -3)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		require.NoError(t, s.Update(rng.Float64()*1000))
	}

	p := s.Percentiles()
	prev, err := p.At(0)
	require.NoError(t, err)
	for i := 1; i < 100; i++ {
		pct := float64(i) / 100
		value, err := p.At(pct)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, value, prev)
		prev = value
	}
}

func TestNegativeSamples(t *testing.T) {
	s, err := New(2, -3)
	require.NoError(t, err)

	require.NoError(t, s.Update(-1.0))
	require.NoError(t, s.Update(-2.0))
	require.NoError(t, s.Update(1.0))

	assert.Equal(t, 3, s.BinCount())
	assert.Equal(t, uint64(3), s.Count())

	p := s.Percentiles()
	first, err := p.At(0)
	require.NoError(t, err)
	assert.Equal(t, -2.0, first)
}

func TestInvariantsHoldUnderBurstyIngest(t *testing.T) {
	s, err := New(3, -2)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	n := 50000
	for i := 0; i < n; i++ {
		v := rng.NormFloat64()*100 + 500
		require.NoError(t, s.Update(v))
	}

	require.LessOrEqual(t, s.BinCount(), BinCap)

	var sum uint64
	prevAlpha := s.alphas[0] - 1
	for i, a := range s.alphas {
		assert.Greater(t, a, prevAlpha, "bins must be strictly ascending")
		prevAlpha = a
		assert.Greater(t, s.counts[i], uint64(0), "every active bin must have count >= 1")
		sum += s.counts[i]
	}
	assert.Equal(t, uint64(n), sum)
	assert.Equal(t, uint64(n), s.Count())
}
