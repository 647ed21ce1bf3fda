package manifold

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Curve is a lazily evaluated parametrized curve on [0, 1]. Curves are not
// precomputed or discretized unless sampled.
type Curve[P any] func(t float64) P

// GeodesicCurve builds the geodesic from p to q as t -> Exp(t * Log(p, q)).
// Base manifolds whose geodesics have no closed form beyond exp/log can use
// it to implement Geodesic.
func GeodesicCurve[P, V any](m Manifold[P, V], p, q P) (Curve[P], error) {
	dir, err := m.Log(p, q)
	if err != nil {
		return nil, err
	}
	return func(t float64) P {
		pt, _ := m.Exp(m.ScaleVector(t, dir))
		return pt
	}, nil
}

// SampleCurve evaluates c at n evenly spaced parameters spanning [0, 1].
// Evaluations run concurrently with bounded parallelism; the curve must be
// safe for concurrent evaluation (all curves produced by this module are).
func SampleCurve[P any](ctx context.Context, c Curve[P], n int) ([]P, error) {
	if n < 2 {
		return nil, ErrInvalidSampleCount
	}
	out := make([]P, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(16)
	for i := range out {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = c(float64(i) / float64(n-1))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
