package manifold

import (
	"github.com/tensorward/manifold/ambient"
)

// Manifold is the closed protocol every base manifold and every derived
// adapter implements. P is the point type, V the tangent-vector type.
//
// Implementations are pure: no operation retains state across calls, and
// returned values never alias inputs unless documented. Operations that can
// detect malformed input (mismatched attachment, wrong ambient shape) fail
// fast with a descriptive error; unary operations on well-formed values do
// not fail.
type Manifold[P, V any] interface {
	// Dimension returns the manifold dimension.
	Dimension() int

	// BasePoint returns the point a tangent vector is attached at.
	BasePoint(v V) P

	// Exp applies the exponential map to v, returning the point reached by
	// following the geodesic with initial velocity v for unit time.
	Exp(v V) (P, error)

	// Log returns the tangent vector at p pointing to q, the inverse of Exp.
	Log(p, q P) (V, error)

	// Geodesic returns the geodesic from p to q as a lazily evaluated curve
	// on [0, 1]. Evaluation of a successfully constructed curve does not
	// fail.
	Geodesic(p, q P) (Curve[P], error)

	// Inner returns the Riemannian inner product of v and w, which must be
	// attached at the same point.
	Inner(v, w V) (float64, error)

	// Norm returns sqrt(Inner(v, v)).
	Norm(v V) float64

	// Distance returns the geodesic distance between p and q.
	Distance(p, q P) (float64, error)

	// Transport parallel-transports v along the geodesic from its
	// attachment point to the target point.
	Transport(v V, to P) (V, error)

	// AddVectors returns v + w; both must be attached at the same point.
	AddVectors(v, w V) (V, error)

	// ScaleVector returns s * v.
	ScaleVector(s float64, v V) V

	// ZeroVector returns the zero tangent vector at p.
	ZeroVector(p P) V

	// EqualPoints reports whether p and q are approximately equal.
	EqualPoints(p, q P, tol Tolerance) bool

	// EqualVectors reports whether v and w are approximately equal,
	// including their attachment points.
	EqualVectors(v, w V, tol Tolerance) bool

	// AmbientShape returns the shape of the ambient encoding of points and
	// tangent vectors of this manifold.
	AmbientShape() ambient.Shape

	// PointToAmbient encodes p as a fresh ambient array.
	PointToAmbient(p P) ambient.Array

	// PointFromAmbient decodes a point from ambient data of exactly the
	// manifold's ambient shape.
	PointFromAmbient(a ambient.Array) (P, error)

	// VectorToAmbient encodes v as a fresh ambient array.
	VectorToAmbient(v V) ambient.Array

	// VectorFromAmbient decodes a tangent vector at the given point from
	// ambient data of exactly the manifold's ambient shape.
	VectorFromAmbient(at P, a ambient.Array) (V, error)

	// ProjectPoint returns the nearest manifold point to arbitrary ambient
	// data of the manifold's ambient shape.
	ProjectPoint(a ambient.Array) (P, error)

	// ProjectVector projects arbitrary ambient data onto the tangent space
	// at the given point.
	ProjectVector(at P, a ambient.Array) (V, error)
}

// InPlace is the buffer-writing companion to Manifold. Destinations are
// caller-owned; a destination must not alias an operation's inputs unless
// the operation's contract states otherwise. Implementations reuse the
// destination's existing storage when its capacity allows and replace it
// wholesale otherwise.
//
// Support is optional for base manifolds; the derived adapters discover it
// via type assertion and fall back to the value-returning forms.
type InPlace[P, V any] interface {
	// ExpInto writes Exp(v) into dst.
	ExpInto(dst *P, v V) error

	// LogInto writes Log(p, q) into dst.
	LogInto(dst *V, p, q P) error

	// AddVectorsInto writes v + w into dst. dst may alias v.
	AddVectorsInto(dst *V, v, w V) error

	// ScaleVectorInto writes s * v into dst. dst may alias v.
	ScaleVectorInto(dst *V, s float64, v V)

	// TransportInto writes Transport(v, to) into dst.
	TransportInto(dst *V, v V, to P) error

	// ZeroVectorInto writes ZeroVector(p) into dst.
	ZeroVectorInto(dst *V, p P)

	// ProjectPointInto writes ProjectPoint(a) into dst.
	ProjectPointInto(dst *P, a ambient.Array) error

	// ProjectVectorInto writes ProjectVector(at, a) into dst.
	ProjectVectorInto(dst *V, at P, a ambient.Array) error
}

// AsInPlace returns the in-place view of m, or nil when m does not support
// buffer-writing operations.
func AsInPlace[P, V any](m Manifold[P, V]) InPlace[P, V] {
	if ip, ok := m.(InPlace[P, V]); ok {
		return ip
	}
	return nil
}
