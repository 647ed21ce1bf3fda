package euclidean

import (
	"github.com/tensorward/manifold/ambient"
	"github.com/tensorward/manifold/internal/math64"
)

// Buffer-writing forms. Destinations reuse their existing storage when
// capacity allows; otherwise the payload slice is replaced wholesale.

// ExpInto writes Exp(v) into dst.
func (s Space) ExpInto(dst *Point, v Vector) error {
	dst.X = math64.Resize(dst.X, s.dim)
	math64.Add(dst.X, v.At.X, v.X)
	return nil
}

// LogInto writes Log(p, q) into dst.
func (s Space) LogInto(dst *Vector, p, q Point) error {
	dst.X = math64.Resize(dst.X, s.dim)
	math64.Sub(dst.X, q.X, p.X)
	dst.At = p
	return nil
}

// AddVectorsInto writes v + w into dst. dst may alias v.
func (s Space) AddVectorsInto(dst *Vector, v, w Vector) error {
	if err := s.checkAttachment("euclidean.add", v, w); err != nil {
		return err
	}
	dst.X = math64.Resize(dst.X, s.dim)
	math64.Add(dst.X, v.X, w.X)
	dst.At = v.At
	return nil
}

// ScaleVectorInto writes scalar * v into dst. dst may alias v.
func (s Space) ScaleVectorInto(dst *Vector, scalar float64, v Vector) {
	dst.X = math64.Resize(dst.X, s.dim)
	math64.Scale(dst.X, v.X, scalar)
	dst.At = v.At
}

// TransportInto writes Transport(v, to) into dst.
func (s Space) TransportInto(dst *Vector, v Vector, to Point) error {
	dst.X = math64.Resize(dst.X, s.dim)
	copy(dst.X, v.X)
	dst.At = to
	return nil
}

// ZeroVectorInto writes ZeroVector(p) into dst.
func (s Space) ZeroVectorInto(dst *Vector, p Point) {
	dst.X = math64.Resize(dst.X, s.dim)
	for i := range dst.X {
		dst.X[i] = 0
	}
	dst.At = p
}

// ProjectPointInto writes ProjectPoint(a) into dst.
func (s Space) ProjectPointInto(dst *Point, a ambient.Array) error {
	if err := ambient.Check(a, s.AmbientShape()); err != nil {
		return err
	}
	dst.X = math64.Resize(dst.X, s.dim)
	copy(dst.X, a.Data)
	return nil
}

// ProjectVectorInto writes ProjectVector(at, a) into dst.
func (s Space) ProjectVectorInto(dst *Vector, at Point, a ambient.Array) error {
	if err := ambient.Check(a, s.AmbientShape()); err != nil {
		return err
	}
	dst.X = math64.Resize(dst.X, s.dim)
	copy(dst.X, a.Data)
	dst.At = at
	return nil
}
