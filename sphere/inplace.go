package sphere

import (
	"math"

	"github.com/tensorward/manifold/ambient"
	"github.com/tensorward/manifold/internal/math64"
)

// Buffer-writing forms. Destinations must not alias inputs unless a method
// says otherwise; storage is reused when capacity allows and replaced
// wholesale otherwise.

// ExpInto writes Exp(v) into dst.
func (s Sphere) ExpInto(dst *Point, v Vector) error {
	dst.X = math64.Resize(dst.X, s.embedding())
	s.expInto(dst.X, v)
	return nil
}

// LogInto writes Log(p, q) into dst.
func (s Sphere) LogInto(dst *Vector, p, q Point) error {
	dst.X = math64.Resize(dst.X, s.embedding())
	if err := s.logInto(dst.X, p, q); err != nil {
		return err
	}
	dst.At = p
	return nil
}

// AddVectorsInto writes v + w into dst. dst may alias v.
func (s Sphere) AddVectorsInto(dst *Vector, v, w Vector) error {
	if err := s.checkAttachment("sphere.add", v, w); err != nil {
		return err
	}
	dst.X = math64.Resize(dst.X, s.embedding())
	math64.Add(dst.X, v.X, w.X)
	dst.At = v.At
	return nil
}

// ScaleVectorInto writes scalar * v into dst. dst may alias v.
func (s Sphere) ScaleVectorInto(dst *Vector, scalar float64, v Vector) {
	dst.X = math64.Resize(dst.X, s.embedding())
	math64.Scale(dst.X, v.X, scalar)
	dst.At = v.At
}

// TransportInto writes Transport(v, to) into dst.
func (s Sphere) TransportInto(dst *Vector, v Vector, to Point) error {
	dst.X = math64.Resize(dst.X, s.embedding())
	if err := s.transportInto(dst.X, nil, v, to); err != nil {
		return err
	}
	dst.At = to
	return nil
}

// ZeroVectorInto writes ZeroVector(p) into dst.
func (s Sphere) ZeroVectorInto(dst *Vector, p Point) {
	dst.X = math64.Resize(dst.X, s.embedding())
	for i := range dst.X {
		dst.X[i] = 0
	}
	dst.At = p
}

// ProjectPointInto writes the normalized ambient data into dst.
func (s Sphere) ProjectPointInto(dst *Point, a ambient.Array) error {
	if err := ambient.Check(a, s.AmbientShape()); err != nil {
		return err
	}
	n := math.Sqrt(math64.Dot(a.Data, a.Data))
	if n == 0 {
		return ErrUnprojectable
	}
	dst.X = math64.Resize(dst.X, s.embedding())
	math64.Scale(dst.X, a.Data, 1/n)
	return nil
}

// ProjectVectorInto writes the tangential component of the ambient data at
// the given point into dst.
func (s Sphere) ProjectVectorInto(dst *Vector, at Point, a ambient.Array) error {
	if err := ambient.Check(a, s.AmbientShape()); err != nil {
		return err
	}
	dst.X = math64.Resize(dst.X, s.embedding())
	n := math64.Dot(a.Data, at.X)
	math64.AddScaled(dst.X, a.Data, -n, at.X)
	dst.At = at
	return nil
}
