package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Vector(32)

	assert.Equal(t, 32, len(v))
	for _, x := range v {
		assert.Less(t, x, 1.0)
		assert.GreaterOrEqual(t, x, -1.0)
	}
}

func TestUnitVector(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UnitVector(8)

	var n float64
	for _, x := range v {
		n += x * x
	}
	assert.InDelta(t, 1, math.Sqrt(n), 1e-12)
}

func TestTangentTo(t *testing.T) {
	rng := NewRNG(42)

	p := rng.UnitVector(5)
	v := rng.TangentTo(p)

	var dot, n float64
	for i := range v {
		dot += v[i] * p[i]
		n += v[i] * v[i]
	}
	assert.InDelta(t, 0, dot, 1e-12)
	assert.InDelta(t, 1, math.Sqrt(n), 1e-12)
}

func TestReset(t *testing.T) {
	rng := NewRNG(7)

	a := rng.Vector(16)
	rng.Reset()
	b := rng.Vector(16)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(7), rng.Seed())
}
