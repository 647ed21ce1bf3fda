package euclidean

import (
	"math"

	"github.com/tensorward/manifold"
	"github.com/tensorward/manifold/ambient"
	"github.com/tensorward/manifold/internal/math64"
)

// Point is a location in R^n.
type Point struct {
	X []float64
}

// Vector is a tangent vector at a point of R^n. The attachment point is
// shared read-only with the vector's owner.
type Vector struct {
	At Point
	X  []float64
}

// Space is flat R^n. The zero value is unusable; use New.
type Space struct {
	dim    int
	tol    manifold.Tolerance
	checks bool
	logger *manifold.Logger
}

// Option configures a Space.
type Option func(*Space)

// WithTolerance sets the tolerance used by the space's own debug checks.
func WithTolerance(tol manifold.Tolerance) Option {
	return func(s *Space) { s.tol = tol }
}

// WithChecks toggles attachment-mismatch checks on binary vector
// operations. Off by default; with checks off, behavior on mismatched
// operands is undefined.
func WithChecks(on bool) Option {
	return func(s *Space) { s.checks = on }
}

// WithLogger sets the logger used to report failed debug checks.
func WithLogger(l *manifold.Logger) Option {
	return func(s *Space) { s.logger = l }
}

// New returns flat R^dim.
func New(dim int, opts ...Option) Space {
	s := Space{
		dim:    dim,
		tol:    manifold.DefaultTolerance,
		logger: manifold.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

var (
	_ manifold.Manifold[Point, Vector] = Space{}
	_ manifold.InPlace[Point, Vector]  = Space{}
)

// Dimension returns n.
func (s Space) Dimension() int { return s.dim }

// BasePoint returns the point v is attached at.
func (s Space) BasePoint(v Vector) Point { return v.At }

func (s Space) checkAttachment(op string, v, w Vector) error {
	if !s.checks {
		return nil
	}
	if !s.EqualPoints(v.At, w.At, s.tol) {
		s.logger.WithOp(op).Warn("attachment mismatch")
		return &manifold.ErrAttachmentMismatch{Op: op}
	}
	return nil
}

// Exp returns At + X.
func (s Space) Exp(v Vector) (Point, error) {
	out := make([]float64, s.dim)
	math64.Add(out, v.At.X, v.X)
	return Point{X: out}, nil
}

// Log returns q - p attached at p.
func (s Space) Log(p, q Point) (Vector, error) {
	out := make([]float64, s.dim)
	math64.Sub(out, q.X, p.X)
	return Vector{At: p, X: out}, nil
}

// Geodesic returns the straight line from p to q.
func (s Space) Geodesic(p, q Point) (manifold.Curve[Point], error) {
	return manifold.GeodesicCurve[Point, Vector](s, p, q)
}

// Inner returns the standard dot product.
func (s Space) Inner(v, w Vector) (float64, error) {
	if err := s.checkAttachment("euclidean.inner", v, w); err != nil {
		return 0, err
	}
	return math64.Dot(v.X, w.X), nil
}

// Norm returns the Euclidean norm of v.
func (s Space) Norm(v Vector) float64 {
	return math.Sqrt(math64.Dot(v.X, v.X))
}

// Distance returns the Euclidean distance between p and q.
func (s Space) Distance(p, q Point) (float64, error) {
	return math.Sqrt(math64.SquaredL2(p.X, q.X)), nil
}

// Transport re-attaches v at the target point; flat space transport leaves
// components unchanged.
func (s Space) Transport(v Vector, to Point) (Vector, error) {
	out := make([]float64, s.dim)
	copy(out, v.X)
	return Vector{At: to, X: out}, nil
}

// AddVectors returns v + w.
func (s Space) AddVectors(v, w Vector) (Vector, error) {
	if err := s.checkAttachment("euclidean.add", v, w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, s.dim)
	math64.Add(out, v.X, w.X)
	return Vector{At: v.At, X: out}, nil
}

// ScaleVector returns scalar * v.
func (s Space) ScaleVector(scalar float64, v Vector) Vector {
	out := make([]float64, s.dim)
	math64.Scale(out, v.X, scalar)
	return Vector{At: v.At, X: out}
}

// ZeroVector returns the zero vector at p.
func (s Space) ZeroVector(p Point) Vector {
	return Vector{At: p, X: make([]float64, s.dim)}
}

// EqualPoints reports approximate equality of p and q.
func (s Space) EqualPoints(p, q Point, tol manifold.Tolerance) bool {
	tol = tol.OrDefault()
	return math64.EqualWithin(p.X, q.X, tol.Abs, tol.Rel)
}

// EqualVectors reports approximate equality of v and w, including their
// attachment points.
func (s Space) EqualVectors(v, w Vector, tol manifold.Tolerance) bool {
	tol = tol.OrDefault()
	return math64.EqualWithin(v.At.X, w.At.X, tol.Abs, tol.Rel) &&
		math64.EqualWithin(v.X, w.X, tol.Abs, tol.Rel)
}

// AmbientShape returns (n).
func (s Space) AmbientShape() ambient.Shape {
	return ambient.LeafShape(s.dim)
}

// PointToAmbient encodes p.
func (s Space) PointToAmbient(p Point) ambient.Array {
	out := make([]float64, s.dim)
	copy(out, p.X)
	return ambient.Leaf(out...)
}

// PointFromAmbient decodes a point.
func (s Space) PointFromAmbient(a ambient.Array) (Point, error) {
	if err := ambient.Check(a, s.AmbientShape()); err != nil {
		return Point{}, err
	}
	out := make([]float64, s.dim)
	copy(out, a.Data)
	return Point{X: out}, nil
}

// VectorToAmbient encodes v.
func (s Space) VectorToAmbient(v Vector) ambient.Array {
	out := make([]float64, s.dim)
	copy(out, v.X)
	return ambient.Leaf(out...)
}

// VectorFromAmbient decodes a tangent vector at the given point.
func (s Space) VectorFromAmbient(at Point, a ambient.Array) (Vector, error) {
	if err := ambient.Check(a, s.AmbientShape()); err != nil {
		return Vector{}, err
	}
	out := make([]float64, s.dim)
	copy(out, a.Data)
	return Vector{At: at, X: out}, nil
}

// ProjectPoint returns the nearest point to ambient data; in flat space the
// data already is a point.
func (s Space) ProjectPoint(a ambient.Array) (Point, error) {
	return s.PointFromAmbient(a)
}

// ProjectVector projects ambient data onto the tangent space at a point;
// in flat space every direction is tangent.
func (s Space) ProjectVector(at Point, a ambient.Array) (Vector, error) {
	return s.VectorFromAmbient(at, a)
}
