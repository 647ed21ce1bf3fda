package tangentbundle

import (
	"math"

	"github.com/tensorward/manifold"
	"github.com/tensorward/manifold/ambient"
	"github.com/tensorward/manifold/tangentspace"
)

// Point is a point of the tangent bundle: its payload X is a base tangent
// vector, and the bundle point it represents is (base point of X, X).
type Point[V any] struct {
	X V
}

// Vector is a tangent vector of the tangent bundle, split into motion along
// the base manifold and motion within the (flat) fiber.
type Vector[V any] struct {
	At    Point[V]
	Base  V
	Fiber tangentspace.Vector[V]
}

// Bundle is the tangent bundle of a base manifold. Use New.
type Bundle[P, V any] struct {
	base    manifold.Manifold[P, V]
	inplace manifold.InPlace[P, V] // nil when base has no in-place support
	cfg     config
}

// New returns the tangent bundle of base.
//
// Type parameters are the base manifold's point and vector types and
// usually have to be spelled out, e.g.
//
//	tb := tangentbundle.New[sphere.Point, sphere.Vector](sph)
func New[P, V any](base manifold.Manifold[P, V], opts ...Option) *Bundle[P, V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Bundle[P, V]{
		base:    base,
		inplace: manifold.AsInPlace(base),
		cfg:     cfg,
	}
}

var _ manifold.Manifold[Point[struct{}], Vector[struct{}]] = (*Bundle[struct{}, struct{}])(nil)

// Base returns the underlying base manifold.
func (b *Bundle[P, V]) Base() manifold.Manifold[P, V] { return b.base }

// FiberAt returns the flat tangent-space manifold over the fiber containing
// the bundle point p.
func (b *Bundle[P, V]) FiberAt(p Point[V]) *tangentspace.Space[P, V] {
	return b.fiberAt(b.base.BasePoint(p.X))
}

func (b *Bundle[P, V]) fiberAt(at P) *tangentspace.Space[P, V] {
	return tangentspace.New(b.base, at,
		tangentspace.WithTolerance(b.cfg.tol),
		tangentspace.WithChecks(b.cfg.checks),
		tangentspace.WithLogger(b.cfg.logger),
	)
}

// Dimension is twice the base dimension: the fiber contributes an
// equal-dimensional copy.
func (b *Bundle[P, V]) Dimension() int { return 2 * b.base.Dimension() }

// BasePoint returns the bundle point v is attached at.
func (b *Bundle[P, V]) BasePoint(v Vector[V]) Point[V] { return v.At }

func (b *Bundle[P, V]) checkAttachment(op string, v, w Vector[V]) error {
	if !b.cfg.checks {
		return nil
	}
	if !b.EqualPoints(v.At, w.At, b.cfg.tol) {
		b.cfg.logger.WithOp(op).Warn("attachment mismatch")
		return &manifold.ErrAttachmentMismatch{Op: op}
	}
	return nil
}

func (b *Bundle[P, V]) fiberPoint(p Point[V]) tangentspace.Point[V] {
	return tangentspace.Point[V]{X: p.X}
}

// Exp moves along the base geodesic by the base motion, applies the flat
// fiber exponential, and parallel-transports the resulting fiber payload to
// the new base point. The transport step is mandatory: the output's fiber
// component must live in the tangent space at the new base point, not the
// old one.
func (b *Bundle[P, V]) Exp(v Vector[V]) (Point[V], error) {
	newBase, err := b.base.Exp(v.Base)
	if err != nil {
		return Point[V]{}, err
	}
	y, err := b.base.AddVectors(v.At.X, v.Fiber.Delta)
	if err != nil {
		return Point[V]{}, err
	}
	yT, err := b.base.Transport(y, newBase)
	if err != nil {
		return Point[V]{}, err
	}
	return Point[V]{X: yT}, nil
}

// Log returns the base log between the two base points, together with the
// fiber payload of q transported back to p's base point minus p's fiber
// payload, attached at p's fiber point.
func (b *Bundle[P, V]) Log(p, q Point[V]) (Vector[V], error) {
	pb := b.base.BasePoint(p.X)
	qb := b.base.BasePoint(q.X)
	baseMotion, err := b.base.Log(pb, qb)
	if err != nil {
		return Vector[V]{}, err
	}
	back, err := b.base.Transport(q.X, pb)
	if err != nil {
		return Vector[V]{}, err
	}
	delta, err := b.base.AddVectors(back, b.base.ScaleVector(-1, p.X))
	if err != nil {
		return Vector[V]{}, err
	}
	return Vector[V]{
		At:   p,
		Base: baseMotion,
		Fiber: tangentspace.Vector[V]{
			At:    b.fiberPoint(p),
			Delta: delta,
		},
	}, nil
}

// Geodesic composes the base geodesic with, at every parameter t, the
// convex combination of the two endpoints' fiber payloads each transported
// to the base curve's point at t. The returned curve therefore yields a
// validly attached bundle point at every sampled t; nothing is precomputed
// or discretized unless sampled.
func (b *Bundle[P, V]) Geodesic(p, q Point[V]) (manifold.Curve[Point[V]], error) {
	pb := b.base.BasePoint(p.X)
	qb := b.base.BasePoint(q.X)
	baseCurve, err := b.base.Geodesic(pb, qb)
	if err != nil {
		return nil, err
	}
	return func(t float64) Point[V] {
		bt := baseCurve(t)
		up, _ := b.base.Transport(p.X, bt)
		uq, _ := b.base.Transport(q.X, bt)
		x, _ := b.base.AddVectors(
			b.base.ScaleVector(1-t, up),
			b.base.ScaleVector(t, uq),
		)
		return Point[V]{X: x}
	}, nil
}

// Inner is the block-diagonal product metric: base inner product of the
// base motions plus flat fiber inner product of the fiber motions. No cross
// terms; horizontal and fiber directions are orthogonal by construction.
func (b *Bundle[P, V]) Inner(v, w Vector[V]) (float64, error) {
	if err := b.checkAttachment("tangentbundle.inner", v, w); err != nil {
		return 0, err
	}
	bi, err := b.base.Inner(v.Base, w.Base)
	if err != nil {
		return 0, err
	}
	pb := b.base.BasePoint(v.At.X)
	fi, err := b.fiberAt(pb).Inner(v.Fiber, w.Fiber)
	if err != nil {
		return 0, err
	}
	return bi + fi, nil
}

// Norm returns sqrt(Inner(v, v)).
func (b *Bundle[P, V]) Norm(v Vector[V]) float64 {
	bn := b.base.Norm(v.Base)
	fn := b.base.Norm(v.Fiber.Delta)
	return math.Sqrt(bn*bn + fn*fn)
}

// Distance combines the base geodesic distance with the transported
// difference of the fiber payloads: p's fiber vector is transported to q's
// base point and the base norm of the difference against q's fiber vector
// taken there. See the package comment: this is a proxy, not the true
// bundle geodesic distance on curved bases.
func (b *Bundle[P, V]) Distance(p, q Point[V]) (float64, error) {
	pb := b.base.BasePoint(p.X)
	qb := b.base.BasePoint(q.X)
	db, err := b.base.Distance(pb, qb)
	if err != nil {
		return 0, err
	}
	pT, err := b.base.Transport(p.X, qb)
	if err != nil {
		return 0, err
	}
	diff, err := b.base.AddVectors(pT, b.base.ScaleVector(-1, q.X))
	if err != nil {
		return 0, err
	}
	df := b.base.Norm(diff)
	return math.Sqrt(db*db + df*df), nil
}

// Transport moves the base motion via the base manifold's parallel
// transport and the fiber motion via the flat fiber's identity transport,
// re-attached at the target's fiber point. The fiber displacement rides the
// base transport so that it stays tangent at the target's base point.
func (b *Bundle[P, V]) Transport(v Vector[V], to Point[V]) (Vector[V], error) {
	tb := b.base.BasePoint(to.X)
	baseMotion, err := b.base.Transport(v.Base, tb)
	if err != nil {
		return Vector[V]{}, err
	}
	delta, err := b.base.Transport(v.Fiber.Delta, tb)
	if err != nil {
		return Vector[V]{}, err
	}
	return Vector[V]{
		At:   to,
		Base: baseMotion,
		Fiber: tangentspace.Vector[V]{
			At:    b.fiberPoint(to),
			Delta: delta,
		},
	}, nil
}

// AddVectors adds componentwise; both operands must be attached at the same
// bundle point.
func (b *Bundle[P, V]) AddVectors(v, w Vector[V]) (Vector[V], error) {
	if err := b.checkAttachment("tangentbundle.add", v, w); err != nil {
		return Vector[V]{}, err
	}
	baseMotion, err := b.base.AddVectors(v.Base, w.Base)
	if err != nil {
		return Vector[V]{}, err
	}
	pb := b.base.BasePoint(v.At.X)
	fiberMotion, err := b.fiberAt(pb).AddVectors(v.Fiber, w.Fiber)
	if err != nil {
		return Vector[V]{}, err
	}
	return Vector[V]{At: v.At, Base: baseMotion, Fiber: fiberMotion}, nil
}

// ScaleVector scales componentwise.
func (b *Bundle[P, V]) ScaleVector(scalar float64, v Vector[V]) Vector[V] {
	pb := b.base.BasePoint(v.At.X)
	return Vector[V]{
		At:    v.At,
		Base:  b.base.ScaleVector(scalar, v.Base),
		Fiber: b.fiberAt(pb).ScaleVector(scalar, v.Fiber),
	}
}

// ZeroVector returns the zero bundle motion at p.
func (b *Bundle[P, V]) ZeroVector(p Point[V]) Vector[V] {
	pb := b.base.BasePoint(p.X)
	return Vector[V]{
		At:    p,
		Base:  b.base.ZeroVector(pb),
		Fiber: b.fiberAt(pb).ZeroVector(b.fiberPoint(p)),
	}
}

// EqualPoints compares bundle points through the base manifold's
// tangent-vector equality, which covers both the base point and the fiber
// payload.
func (b *Bundle[P, V]) EqualPoints(p, q Point[V], tol manifold.Tolerance) bool {
	return b.base.EqualVectors(p.X, q.X, tol)
}

// EqualVectors compares attachment, base motion and fiber motion.
func (b *Bundle[P, V]) EqualVectors(v, w Vector[V], tol manifold.Tolerance) bool {
	return b.EqualPoints(v.At, w.At, tol) &&
		b.base.EqualVectors(v.Base, w.Base, tol) &&
		b.base.EqualVectors(v.Fiber.Delta, w.Fiber.Delta, tol)
}

// AmbientShape is the pair (base ambient shape, base ambient shape):
// encodings are 2-tuples of (ambient base point, ambient fiber vector), and
// nest recursively for bundles over bundles.
func (b *Bundle[P, V]) AmbientShape() ambient.Shape {
	s := b.base.AmbientShape()
	return ambient.PairShape(s, s)
}

// PointToAmbient encodes p as (ambient base point, ambient fiber vector).
func (b *Bundle[P, V]) PointToAmbient(p Point[V]) ambient.Array {
	pb := b.base.BasePoint(p.X)
	return ambient.Pair(b.base.PointToAmbient(pb), b.base.VectorToAmbient(p.X))
}

// PointFromAmbient decodes a bundle point from a pair encoding.
func (b *Bundle[P, V]) PointFromAmbient(a ambient.Array) (Point[V], error) {
	if err := ambient.Check(a, b.AmbientShape()); err != nil {
		return Point[V]{}, err
	}
	at, err := b.base.PointFromAmbient(a.Base())
	if err != nil {
		return Point[V]{}, err
	}
	x, err := b.base.VectorFromAmbient(at, a.Fiber())
	if err != nil {
		return Point[V]{}, err
	}
	return Point[V]{X: x}, nil
}

// VectorToAmbient encodes v as (ambient base motion, ambient fiber motion).
func (b *Bundle[P, V]) VectorToAmbient(v Vector[V]) ambient.Array {
	return ambient.Pair(
		b.base.VectorToAmbient(v.Base),
		b.base.VectorToAmbient(v.Fiber.Delta),
	)
}

// VectorFromAmbient decodes a bundle tangent vector at the given bundle
// point from a pair encoding.
func (b *Bundle[P, V]) VectorFromAmbient(at Point[V], a ambient.Array) (Vector[V], error) {
	if err := ambient.Check(a, b.AmbientShape()); err != nil {
		return Vector[V]{}, err
	}
	pb := b.base.BasePoint(at.X)
	baseMotion, err := b.base.VectorFromAmbient(pb, a.Base())
	if err != nil {
		return Vector[V]{}, err
	}
	delta, err := b.base.VectorFromAmbient(pb, a.Fiber())
	if err != nil {
		return Vector[V]{}, err
	}
	return Vector[V]{
		At:   at,
		Base: baseMotion,
		Fiber: tangentspace.Vector[V]{
			At:    b.fiberPoint(at),
			Delta: delta,
		},
	}, nil
}

// ProjectPoint projects a pair of nearby ambient data onto the bundle: the
// base component onto the base manifold, the fiber component onto the
// tangent space at the projected base point.
func (b *Bundle[P, V]) ProjectPoint(a ambient.Array) (Point[V], error) {
	if err := ambient.Check(a, b.AmbientShape()); err != nil {
		return Point[V]{}, err
	}
	at, err := b.base.ProjectPoint(a.Base())
	if err != nil {
		return Point[V]{}, err
	}
	x, err := b.base.ProjectVector(at, a.Fiber())
	if err != nil {
		return Point[V]{}, err
	}
	return Point[V]{X: x}, nil
}

// ProjectVector projects a pair of ambient data onto the tangent space of
// the bundle at the given bundle point.
func (b *Bundle[P, V]) ProjectVector(at Point[V], a ambient.Array) (Vector[V], error) {
	if err := ambient.Check(a, b.AmbientShape()); err != nil {
		return Vector[V]{}, err
	}
	pb := b.base.BasePoint(at.X)
	baseMotion, err := b.base.ProjectVector(pb, a.Base())
	if err != nil {
		return Vector[V]{}, err
	}
	delta, err := b.base.ProjectVector(pb, a.Fiber())
	if err != nil {
		return Vector[V]{}, err
	}
	return Vector[V]{
		At:   at,
		Base: baseMotion,
		Fiber: tangentspace.Vector[V]{
			At:    b.fiberPoint(at),
			Delta: delta,
		},
	}, nil
}
