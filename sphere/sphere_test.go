package sphere

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorward/manifold"
	"github.com/tensorward/manifold/ambient"
	"github.com/tensorward/manifold/testutil"
)

func northPole() Point {
	return Point{X: []float64{0, 0, 1}}
}

func TestExpQuarterCircle(t *testing.T) {
	s := New(2)
	p := northPole()
	v := Vector{At: p, X: []float64{math.Pi / 2, 0, 0}}

	q, err := s.Exp(v)
	require.NoError(t, err)
	assert.InDelta(t, 1, q.X[0], 1e-12)
	assert.InDelta(t, 0, q.X[1], 1e-12)
	assert.InDelta(t, 0, q.X[2], 1e-12)
}

func TestExpZeroVector(t *testing.T) {
	s := New(2)
	p := northPole()

	q, err := s.Exp(s.ZeroVector(p))
	require.NoError(t, err)
	assert.True(t, s.EqualPoints(p, q, manifold.DefaultTolerance))
}

func TestExpLogRoundTrip(t *testing.T) {
	s := New(2)
	rng := testutil.NewRNG(42)

	for range 20 {
		p := Point{X: rng.UnitVector(3)}
		v := Vector{At: p, X: rng.TangentTo(p.X)}
		v = s.ScaleVector(rng.Float64()*2, v) // stay well below pi

		q, err := s.Exp(v)
		require.NoError(t, err)

		back, err := s.Log(p, q)
		require.NoError(t, err)
		assert.True(t, s.EqualVectors(v, back, manifold.Tolerance{Abs: 1e-9, Rel: 1e-9}),
			"log(exp(v)) should return v")
	}
}

func TestLogAntipodal(t *testing.T) {
	s := New(2)
	p := northPole()
	q := Point{X: []float64{0, 0, -1}}

	_, err := s.Log(p, q)
	assert.ErrorIs(t, err, ErrAntipodal)
}

func TestDistance(t *testing.T) {
	s := New(2)
	p := northPole()
	q := Point{X: []float64{1, 0, 0}}

	d, err := s.Distance(p, q)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, d, 1e-12)

	dqp, err := s.Distance(q, p)
	require.NoError(t, err)
	assert.InDelta(t, d, dqp, 1e-12)

	v, err := s.Log(p, q)
	require.NoError(t, err)
	assert.InDelta(t, d, s.Norm(v), 1e-12)
}

func TestTriangleInequality(t *testing.T) {
	s := New(2)
	rng := testutil.NewRNG(7)

	for range 20 {
		p := Point{X: rng.UnitVector(3)}
		q := Point{X: rng.UnitVector(3)}
		r := Point{X: rng.UnitVector(3)}

		dpr, err := s.Distance(p, r)
		require.NoError(t, err)
		dpq, err := s.Distance(p, q)
		require.NoError(t, err)
		dqr, err := s.Distance(q, r)
		require.NoError(t, err)

		assert.LessOrEqual(t, dpr, dpq+dqr+1e-9)
	}
}

func TestTransportPreservesInner(t *testing.T) {
	s := New(2)
	rng := testutil.NewRNG(11)

	for range 20 {
		p := Point{X: rng.UnitVector(3)}
		q := Point{X: rng.UnitVector(3)}
		u := Vector{At: p, X: rng.TangentTo(p.X)}
		w := Vector{At: p, X: rng.TangentTo(p.X)}

		before, err := s.Inner(u, w)
		require.NoError(t, err)

		uT, err := s.Transport(u, q)
		require.NoError(t, err)
		wT, err := s.Transport(w, q)
		require.NoError(t, err)

		after, err := s.Inner(uT, wT)
		require.NoError(t, err)
		assert.InDelta(t, before, after, 1e-9)

		// Transported vectors stay tangent at the target.
		var dot float64
		for i := range uT.X {
			dot += uT.X[i] * q.X[i]
		}
		assert.InDelta(t, 0, dot, 1e-9)
	}
}

func TestGeodesicBoundary(t *testing.T) {
	s := New(2)
	p := northPole()
	q := Point{X: []float64{1, 0, 0}}

	c, err := s.Geodesic(p, q)
	require.NoError(t, err)
	assert.True(t, s.EqualPoints(c(0), p, manifold.Tolerance{Abs: 1e-9}))
	assert.True(t, s.EqualPoints(c(1), q, manifold.Tolerance{Abs: 1e-9}))

	mid := c(0.5)
	inv := 1 / math.Sqrt2
	assert.InDelta(t, inv, mid.X[0], 1e-9)
	assert.InDelta(t, 0, mid.X[1], 1e-9)
	assert.InDelta(t, inv, mid.X[2], 1e-9)
}

func TestProjectPoint(t *testing.T) {
	s := New(2)

	p, err := s.ProjectPoint(ambient.Leaf(0, 0, 2.5))
	require.NoError(t, err)
	assert.InDelta(t, 1, p.X[2], 1e-12)

	_, err = s.ProjectPoint(ambient.Leaf(0, 0, 0))
	assert.ErrorIs(t, err, ErrUnprojectable)
}

func TestProjectVector(t *testing.T) {
	s := New(2)
	p := northPole()

	v, err := s.ProjectVector(p, ambient.Leaf(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0}, v.X)
}

func TestAmbientRoundTrip(t *testing.T) {
	s := New(2)
	p := northPole()
	v := Vector{At: p, X: []float64{0.3, -0.4, 0}}

	p2, err := s.PointFromAmbient(s.PointToAmbient(p))
	require.NoError(t, err)
	assert.True(t, s.EqualPoints(p, p2, manifold.DefaultTolerance))

	v2, err := s.VectorFromAmbient(p, s.VectorToAmbient(v))
	require.NoError(t, err)
	assert.True(t, s.EqualVectors(v, v2, manifold.DefaultTolerance))

	_, err = s.PointFromAmbient(ambient.Leaf(1, 2))
	var sm *ambient.ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
}

func TestAttachmentChecked(t *testing.T) {
	s := New(2, WithChecks(true))
	u := Vector{At: northPole(), X: []float64{1, 0, 0}}
	w := Vector{At: Point{X: []float64{1, 0, 0}}, X: []float64{0, 1, 0}}

	_, err := s.AddVectors(u, w)
	var am *manifold.ErrAttachmentMismatch
	require.ErrorAs(t, err, &am)
}

func TestInPlaceAgreesWithValueForms(t *testing.T) {
	s := New(2)
	rng := testutil.NewRNG(3)
	p := Point{X: rng.UnitVector(3)}
	q := Point{X: rng.UnitVector(3)}
	v := Vector{At: p, X: rng.TangentTo(p.X)}

	var dp Point
	require.NoError(t, s.ExpInto(&dp, v))
	want, err := s.Exp(v)
	require.NoError(t, err)
	assert.True(t, s.EqualPoints(want, dp, manifold.DefaultTolerance))

	var dv Vector
	require.NoError(t, s.LogInto(&dv, p, q))
	wantV, err := s.Log(p, q)
	require.NoError(t, err)
	assert.True(t, s.EqualVectors(wantV, dv, manifold.DefaultTolerance))

	require.NoError(t, s.TransportInto(&dv, v, q))
	wantT, err := s.Transport(v, q)
	require.NoError(t, err)
	assert.True(t, s.EqualVectors(wantT, dv, manifold.DefaultTolerance))

	require.NoError(t, s.ProjectPointInto(&dp, ambient.Leaf(1, 1, 1)))
	wantP, err := s.ProjectPoint(ambient.Leaf(1, 1, 1))
	require.NoError(t, err)
	assert.True(t, s.EqualPoints(wantP, dp, manifold.DefaultTolerance))
}

func TestDimension(t *testing.T) {
	s := New(2)
	assert.Equal(t, 2, s.Dimension())
	assert.Equal(t, "(3)", s.AmbientShape().String())
}
