package tangentspace

import (
	"github.com/tensorward/manifold"
	"github.com/tensorward/manifold/ambient"
)

// Point is a point of the flat tangent-space manifold: a tangent vector X
// of the base manifold at the space's fixed base point.
type Point[V any] struct {
	X V
}

// Vector is a tangent vector of the tangent-space manifold: a flat
// displacement Delta (itself a base tangent vector) attached at a fiber
// point.
type Vector[V any] struct {
	At    Point[V]
	Delta V
}

// Space is the tangent space at a fixed point of a base manifold, treated
// as a flat manifold. Use New.
type Space[P, V any] struct {
	base    manifold.Manifold[P, V]
	inplace manifold.InPlace[P, V] // nil when base has no in-place support
	at      P
	cfg     config
}

// New returns the tangent space of base at the given point.
//
// Type parameters are the base manifold's point and vector types and
// usually have to be spelled out, e.g.
//
//	ts := tangentspace.New[sphere.Point, sphere.Vector](sph, p0)
func New[P, V any](base manifold.Manifold[P, V], at P, opts ...Option) *Space[P, V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Space[P, V]{
		base:    base,
		inplace: manifold.AsInPlace(base),
		at:      at,
		cfg:     cfg,
	}
}

var _ manifold.Manifold[Point[struct{}], Vector[struct{}]] = (*Space[struct{}, struct{}])(nil)

// At returns the fixed base point the space is anchored at.
func (s *Space[P, V]) At() P { return s.at }

// Base returns the underlying base manifold.
func (s *Space[P, V]) Base() manifold.Manifold[P, V] { return s.base }

// Dimension equals the base manifold's dimension.
func (s *Space[P, V]) Dimension() int { return s.base.Dimension() }

// BasePoint returns the fiber point v is attached at.
func (s *Space[P, V]) BasePoint(v Vector[V]) Point[V] { return v.At }

func (s *Space[P, V]) checkFiber(op string, p, q Point[V]) error {
	if !s.cfg.checks {
		return nil
	}
	if !s.base.EqualPoints(s.base.BasePoint(p.X), s.base.BasePoint(q.X), s.cfg.tol) {
		s.cfg.logger.WithOp(op).Warn("points belong to different fibers")
		return &manifold.ErrMismatchedFiber{Op: op}
	}
	return nil
}

func (s *Space[P, V]) checkAttachment(op string, v, w Vector[V]) error {
	if !s.cfg.checks {
		return nil
	}
	if !s.EqualPoints(v.At, w.At, s.cfg.tol) {
		s.cfg.logger.WithOp(op).Warn("attachment mismatch")
		return &manifold.ErrAttachmentMismatch{Op: op}
	}
	return nil
}

// Exp is flat addition: the result's payload is At.X + Delta. Always exact,
// no iterative solve.
func (s *Space[P, V]) Exp(v Vector[V]) (Point[V], error) {
	x, err := s.base.AddVectors(v.At.X, v.Delta)
	if err != nil {
		return Point[V]{}, err
	}
	return Point[V]{X: x}, nil
}

// Log is flat subtraction: Delta = q.X - p.X, attached at p. Fails with
// ErrMismatchedFiber when debug checks are enabled and the points lie in
// different fibers.
func (s *Space[P, V]) Log(p, q Point[V]) (Vector[V], error) {
	if err := s.checkFiber("tangentspace.log", p, q); err != nil {
		return Vector[V]{}, err
	}
	d, err := s.base.AddVectors(q.X, s.base.ScaleVector(-1, p.X))
	if err != nil {
		return Vector[V]{}, err
	}
	return Vector[V]{At: p, Delta: d}, nil
}

// Geodesic is the straight-line interpolation (1-t)*p + t*q in payload
// space; constant speed by construction.
func (s *Space[P, V]) Geodesic(p, q Point[V]) (manifold.Curve[Point[V]], error) {
	dir, err := s.Log(p, q)
	if err != nil {
		return nil, err
	}
	return func(t float64) Point[V] {
		x, _ := s.base.AddVectors(p.X, s.base.ScaleVector(t, dir.Delta))
		return Point[V]{X: x}
	}, nil
}

// Inner delegates to the base manifold's inner product at the fixed base
// point. This is what makes the fiber flat yet metric-consistent with the
// base manifold's Riemannian structure there.
func (s *Space[P, V]) Inner(v, w Vector[V]) (float64, error) {
	if err := s.checkAttachment("tangentspace.inner", v, w); err != nil {
		return 0, err
	}
	return s.base.Inner(v.Delta, w.Delta)
}

// Norm returns the base norm of the displacement.
func (s *Space[P, V]) Norm(v Vector[V]) float64 {
	return s.base.Norm(v.Delta)
}

// Distance is the flat-metric distance norm(Log(p, q)).
func (s *Space[P, V]) Distance(p, q Point[V]) (float64, error) {
	d, err := s.Log(p, q)
	if err != nil {
		return 0, err
	}
	return s.Norm(d), nil
}

// Transport is the identity on the payload; only the recorded attachment
// point changes.
func (s *Space[P, V]) Transport(v Vector[V], to Point[V]) (Vector[V], error) {
	return Vector[V]{At: to, Delta: s.base.ScaleVector(1, v.Delta)}, nil
}

// AddVectors adds displacements; both operands must be attached at the same
// fiber point.
func (s *Space[P, V]) AddVectors(v, w Vector[V]) (Vector[V], error) {
	if err := s.checkAttachment("tangentspace.add", v, w); err != nil {
		return Vector[V]{}, err
	}
	d, err := s.base.AddVectors(v.Delta, w.Delta)
	if err != nil {
		return Vector[V]{}, err
	}
	return Vector[V]{At: v.At, Delta: d}, nil
}

// ScaleVector scales the displacement.
func (s *Space[P, V]) ScaleVector(scalar float64, v Vector[V]) Vector[V] {
	return Vector[V]{At: v.At, Delta: s.base.ScaleVector(scalar, v.Delta)}
}

// ZeroVector returns the zero displacement at p.
func (s *Space[P, V]) ZeroVector(p Point[V]) Vector[V] {
	return Vector[V]{At: p, Delta: s.base.ZeroVector(s.at)}
}

// EqualPoints compares fiber points through the base manifold's
// tangent-vector equality.
func (s *Space[P, V]) EqualPoints(p, q Point[V], tol manifold.Tolerance) bool {
	return s.base.EqualVectors(p.X, q.X, tol)
}

// EqualVectors compares displacements and their attachment points.
func (s *Space[P, V]) EqualVectors(v, w Vector[V], tol manifold.Tolerance) bool {
	return s.EqualPoints(v.At, w.At, tol) &&
		s.base.EqualVectors(v.Delta, w.Delta, tol)
}

// AmbientShape equals the base manifold's ambient shape: fiber points are
// encoded exactly like the base tangent vectors they wrap.
func (s *Space[P, V]) AmbientShape() ambient.Shape {
	return s.base.AmbientShape()
}

// PointToAmbient encodes the payload via the base tangent-vector transform.
func (s *Space[P, V]) PointToAmbient(p Point[V]) ambient.Array {
	return s.base.VectorToAmbient(p.X)
}

// PointFromAmbient decodes a fiber point from ambient data.
func (s *Space[P, V]) PointFromAmbient(a ambient.Array) (Point[V], error) {
	x, err := s.base.VectorFromAmbient(s.at, a)
	if err != nil {
		return Point[V]{}, err
	}
	return Point[V]{X: x}, nil
}

// VectorToAmbient encodes the displacement via the base tangent-vector
// transform.
func (s *Space[P, V]) VectorToAmbient(v Vector[V]) ambient.Array {
	return s.base.VectorToAmbient(v.Delta)
}

// VectorFromAmbient decodes a displacement attached at the given fiber
// point.
func (s *Space[P, V]) VectorFromAmbient(at Point[V], a ambient.Array) (Vector[V], error) {
	d, err := s.base.VectorFromAmbient(s.at, a)
	if err != nil {
		return Vector[V]{}, err
	}
	return Vector[V]{At: at, Delta: d}, nil
}

// ProjectPoint projects nearby ambient data onto the fiber by delegating to
// the base manifold's tangent-vector projection at the fixed base point.
func (s *Space[P, V]) ProjectPoint(a ambient.Array) (Point[V], error) {
	x, err := s.base.ProjectVector(s.at, a)
	if err != nil {
		return Point[V]{}, err
	}
	return Point[V]{X: x}, nil
}

// ProjectVector projects ambient data onto the displacement space at the
// given fiber point.
func (s *Space[P, V]) ProjectVector(at Point[V], a ambient.Array) (Vector[V], error) {
	d, err := s.base.ProjectVector(s.at, a)
	if err != nil {
		return Vector[V]{}, err
	}
	return Vector[V]{At: at, Delta: d}, nil
}
