package manifold_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorward/manifold"
	"github.com/tensorward/manifold/euclidean"
)

func TestGeodesicCurve(t *testing.T) {
	eu := euclidean.New(2)
	p := euclidean.Point{X: []float64{0, 0}}
	q := euclidean.Point{X: []float64{2, 4}}

	c, err := manifold.GeodesicCurve[euclidean.Point, euclidean.Vector](eu, p, q)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0}, c(0).X)
	assert.Equal(t, []float64{1, 2}, c(0.5).X)
	assert.Equal(t, []float64{2, 4}, c(1).X)
}

func TestSampleCurve(t *testing.T) {
	eu := euclidean.New(1)
	p := euclidean.Point{X: []float64{0}}
	q := euclidean.Point{X: []float64{1}}

	c, err := manifold.GeodesicCurve[euclidean.Point, euclidean.Vector](eu, p, q)
	require.NoError(t, err)

	points, err := manifold.SampleCurve(context.Background(), c, 5)
	require.NoError(t, err)
	require.Len(t, points, 5)
	for i, pt := range points {
		assert.InDelta(t, float64(i)/4, pt.X[0], 1e-12)
	}
}

func TestSampleCurveInvalidCount(t *testing.T) {
	c := manifold.Curve[int](func(t float64) int { return 0 })

	_, err := manifold.SampleCurve(context.Background(), c, 1)
	assert.ErrorIs(t, err, manifold.ErrInvalidSampleCount)
}

func TestSampleCurveCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := manifold.Curve[int](func(t float64) int { return 0 })
	_, err := manifold.SampleCurve(ctx, c, 100)
	assert.ErrorIs(t, err, context.Canceled)
}
