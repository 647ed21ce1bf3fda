package sphere

import (
	"errors"
	"math"

	"github.com/tensorward/manifold"
	"github.com/tensorward/manifold/ambient"
	"github.com/tensorward/manifold/internal/math64"
)

// ErrAntipodal is returned by Log when the two points are antipodal and the
// logarithm is not uniquely defined.
var ErrAntipodal = errors.New("sphere: logarithm undefined for antipodal points")

// ErrUnprojectable is returned by ProjectPoint when the ambient data has no
// nearest sphere point (zero vector).
var ErrUnprojectable = errors.New("sphere: cannot project zero ambient data")

// angleEps bounds the sin(theta) denominator in Log and Transport.
const angleEps = 1e-12

// Point is a unit vector in R^(n+1).
type Point struct {
	X []float64
}

// Vector is a tangent vector at a point, orthogonal to the point in the
// embedding space. The attachment point is shared read-only with the
// vector's owner.
type Vector struct {
	At Point
	X  []float64
}

// Sphere is the unit n-sphere. The zero value is unusable; use New.
type Sphere struct {
	dim    int // manifold dimension; the embedding has dim+1 coordinates
	tol    manifold.Tolerance
	checks bool
	logger *manifold.Logger
}

// Option configures a Sphere.
type Option func(*Sphere)

// WithTolerance sets the tolerance used by the sphere's own debug checks.
func WithTolerance(tol manifold.Tolerance) Option {
	return func(s *Sphere) { s.tol = tol }
}

// WithChecks toggles attachment-mismatch checks on binary vector
// operations. Off by default.
func WithChecks(on bool) Option {
	return func(s *Sphere) { s.checks = on }
}

// WithLogger sets the logger used to report failed debug checks.
func WithLogger(l *manifold.Logger) Option {
	return func(s *Sphere) { s.logger = l }
}

// New returns the unit n-sphere S^dim.
func New(dim int, opts ...Option) Sphere {
	s := Sphere{
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
	_ manifold.Manifold[Point, Vector] = Sphere{}
	_ manifold.InPlace[Point, Vector]  = Sphere{}
)

// Dimension returns n, the manifold dimension.
func (s Sphere) Dimension() int { return s.dim }

func (s Sphere) embedding() int { return s.dim + 1 }

// BasePoint returns the point v is attached at.
func (s Sphere) BasePoint(v Vector) Point { return v.At }

func (s Sphere) checkAttachment(op string, v, w Vector) error {
	if !s.checks {
		return nil
	}
	if !s.EqualPoints(v.At, w.At, s.tol) {
		s.logger.WithOp(op).Warn("attachment mismatch")
		return &manifold.ErrAttachmentMismatch{Op: op}
	}
	return nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Exp follows the great circle with initial velocity v for unit time:
// cos(|v|)*p + sin(|v|)*v/|v|.
func (s Sphere) Exp(v Vector) (Point, error) {
	out := make([]float64, s.embedding())
	s.expInto(out, v)
	return Point{X: out}, nil
}

func (s Sphere) expInto(out []float64, v Vector) {
	theta := math.Sqrt(math64.Dot(v.X, v.X))
	if theta == 0 {
		copy(out, v.At.X)
		return
	}
	c, k := math.Cos(theta), math.Sin(theta)/theta
	for i := range out {
		out[i] = c*v.At.X[i] + k*v.X[i]
	}
}

// Log returns the tangent vector at p pointing along the great circle to q.
func (s Sphere) Log(p, q Point) (Vector, error) {
	out := make([]float64, s.embedding())
	if err := s.logInto(out, p, q); err != nil {
		return Vector{}, err
	}
	return Vector{At: p, X: out}, nil
}

func (s Sphere) logInto(out []float64, p, q Point) error {
	c := clamp(math64.Dot(p.X, q.X), -1, 1)
	theta := math.Acos(c)
	// w is q with its component along p removed.
	math64.AddScaled(out, q.X, -c, p.X)
	wn := math.Sqrt(math64.Dot(out, out))
	if wn < angleEps {
		if theta > 1 {
			return ErrAntipodal
		}
		for i := range out {
			out[i] = 0
		}
		return nil
	}
	math64.ScaleInPlace(out, theta/wn)
	return nil
}

// Geodesic returns the great-circle arc from p to q.
func (s Sphere) Geodesic(p, q Point) (manifold.Curve[Point], error) {
	return manifold.GeodesicCurve[Point, Vector](s, p, q)
}

// Inner returns the embedding dot product.
func (s Sphere) Inner(v, w Vector) (float64, error) {
	if err := s.checkAttachment("sphere.inner", v, w); err != nil {
		return 0, err
	}
	return math64.Dot(v.X, w.X), nil
}

// Norm returns the embedding norm of v.
func (s Sphere) Norm(v Vector) float64 {
	return math.Sqrt(math64.Dot(v.X, v.X))
}

// Distance returns the great-circle angle between p and q.
func (s Sphere) Distance(p, q Point) (float64, error) {
	return math.Acos(clamp(math64.Dot(p.X, q.X), -1, 1)), nil
}

// Transport parallel-transports v along the great circle from its
// attachment point to the target. Components orthogonal to the direction of
// travel are unchanged; the tangential component rotates with the geodesic,
// which keeps inner products invariant.
func (s Sphere) Transport(v Vector, to Point) (Vector, error) {
	out := make([]float64, s.embedding())
	if err := s.transportInto(out, nil, v, to); err != nil {
		return Vector{}, err
	}
	return Vector{At: to, X: out}, nil
}

func (s Sphere) transportInto(out, scratch []float64, v Vector, to Point) error {
	if scratch == nil {
		scratch = make([]float64, s.embedding())
	}
	if err := s.logInto(scratch, v.At, to); err != nil {
		return err
	}
	theta := math.Sqrt(math64.Dot(scratch, scratch))
	if theta < angleEps {
		copy(out, v.X)
		return nil
	}
	math64.ScaleInPlace(scratch, 1/theta) // unit direction of travel
	vu := math64.Dot(v.X, scratch)
	cs, sn := math.Cos(theta), math.Sin(theta)
	for i := range out {
		out[i] = v.X[i] + vu*((cs-1)*scratch[i]-sn*v.At.X[i])
	}
	return nil
}

// AddVectors returns v + w.
func (s Sphere) AddVectors(v, w Vector) (Vector, error) {
	if err := s.checkAttachment("sphere.add", v, w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, s.embedding())
	math64.Add(out, v.X, w.X)
	return Vector{At: v.At, X: out}, nil
}

// ScaleVector returns scalar * v.
func (s Sphere) ScaleVector(scalar float64, v Vector) Vector {
	out := make([]float64, s.embedding())
	math64.Scale(out, v.X, scalar)
	return Vector{At: v.At, X: out}
}

// ZeroVector returns the zero vector at p.
func (s Sphere) ZeroVector(p Point) Vector {
	return Vector{At: p, X: make([]float64, s.embedding())}
}

// EqualPoints reports approximate equality of p and q.
func (s Sphere) EqualPoints(p, q Point, tol manifold.Tolerance) bool {
	tol = tol.OrDefault()
	return math64.EqualWithin(p.X, q.X, tol.Abs, tol.Rel)
}

// EqualVectors reports approximate equality of v and w, including their
// attachment points.
func (s Sphere) EqualVectors(v, w Vector, tol manifold.Tolerance) bool {
	tol = tol.OrDefault()
	return math64.EqualWithin(v.At.X, w.At.X, tol.Abs, tol.Rel) &&
		math64.EqualWithin(v.X, w.X, tol.Abs, tol.Rel)
}

// AmbientShape returns (n+1), the embedding coordinates.
func (s Sphere) AmbientShape() ambient.Shape {
	return ambient.LeafShape(s.embedding())
}

// PointToAmbient encodes p as its embedding coordinates.
func (s Sphere) PointToAmbient(p Point) ambient.Array {
	out := make([]float64, s.embedding())
	copy(out, p.X)
	return ambient.Leaf(out...)
}

// PointFromAmbient decodes a point; the data is trusted to be on the
// sphere. Use ProjectPoint for nearby off-sphere data.
func (s Sphere) PointFromAmbient(a ambient.Array) (Point, error) {
	if err := ambient.Check(a, s.AmbientShape()); err != nil {
		return Point{}, err
	}
	out := make([]float64, s.embedding())
	copy(out, a.Data)
	return Point{X: out}, nil
}

// VectorToAmbient encodes v as its embedding coordinates.
func (s Sphere) VectorToAmbient(v Vector) ambient.Array {
	out := make([]float64, s.embedding())
	copy(out, v.X)
	return ambient.Leaf(out...)
}

// VectorFromAmbient decodes a tangent vector at the given point; the data
// is trusted to be tangent. Use ProjectVector for arbitrary data.
func (s Sphere) VectorFromAmbient(at Point, a ambient.Array) (Vector, error) {
	if err := ambient.Check(a, s.AmbientShape()); err != nil {
		return Vector{}, err
	}
	out := make([]float64, s.embedding())
	copy(out, a.Data)
	return Vector{At: at, X: out}, nil
}

// ProjectPoint normalizes ambient data onto the sphere.
func (s Sphere) ProjectPoint(a ambient.Array) (Point, error) {
	var p Point
	if err := s.ProjectPointInto(&p, a); err != nil {
		return Point{}, err
	}
	return p, nil
}

// ProjectVector removes the normal component of ambient data, yielding the
// nearest tangent vector at the given point.
func (s Sphere) ProjectVector(at Point, a ambient.Array) (Vector, error) {
	if err := ambient.Check(a, s.AmbientShape()); err != nil {
		return Vector{}, err
	}
	out := make([]float64, s.embedding())
	n := math64.Dot(a.Data, at.X)
	math64.AddScaled(out, a.Data, -n, at.X)
	return Vector{At: at, X: out}, nil
}
