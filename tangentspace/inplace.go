package tangentspace

import (
	"github.com/tensorward/manifold"
	"github.com/tensorward/manifold/ambient"
)

// Buffer-writing forms. When the base manifold supports in-place operations
// they are used directly; otherwise the value-returning form runs and the
// destination's payload is replaced wholesale.

// ExpInto writes Exp(v) into dst.
func (s *Space[P, V]) ExpInto(dst *Point[V], v Vector[V]) error {
	if s.inplace != nil {
		return s.inplace.AddVectorsInto(&dst.X, v.At.X, v.Delta)
	}
	p, err := s.Exp(v)
	if err != nil {
		return err
	}
	*dst = p
	return nil
}

// LogInto writes Log(p, q) into dst.
func (s *Space[P, V]) LogInto(dst *Vector[V], p, q Point[V]) error {
	if err := s.checkFiber("tangentspace.log", p, q); err != nil {
		return err
	}
	if s.inplace != nil {
		if err := s.inplace.AddVectorsInto(&dst.Delta, q.X, s.base.ScaleVector(-1, p.X)); err != nil {
			return err
		}
		dst.At = p
		return nil
	}
	v, err := s.Log(p, q)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// AddVectorsInto writes v + w into dst. dst may alias v.
func (s *Space[P, V]) AddVectorsInto(dst *Vector[V], v, w Vector[V]) error {
	if err := s.checkAttachment("tangentspace.add", v, w); err != nil {
		return err
	}
	if s.inplace != nil {
		if err := s.inplace.AddVectorsInto(&dst.Delta, v.Delta, w.Delta); err != nil {
			return err
		}
		dst.At = v.At
		return nil
	}
	out, err := s.AddVectors(v, w)
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// ScaleVectorInto writes scalar * v into dst. dst may alias v.
func (s *Space[P, V]) ScaleVectorInto(dst *Vector[V], scalar float64, v Vector[V]) {
	if s.inplace != nil {
		s.inplace.ScaleVectorInto(&dst.Delta, scalar, v.Delta)
		dst.At = v.At
		return
	}
	*dst = s.ScaleVector(scalar, v)
}

// TransportInto writes the identity transport of v into dst.
func (s *Space[P, V]) TransportInto(dst *Vector[V], v Vector[V], to Point[V]) error {
	if s.inplace != nil {
		s.inplace.ScaleVectorInto(&dst.Delta, 1, v.Delta)
		dst.At = to
		return nil
	}
	out, err := s.Transport(v, to)
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// ZeroVectorInto writes ZeroVector(p) into dst.
func (s *Space[P, V]) ZeroVectorInto(dst *Vector[V], p Point[V]) {
	if s.inplace != nil {
		s.inplace.ZeroVectorInto(&dst.Delta, s.at)
		dst.At = p
		return
	}
	*dst = s.ZeroVector(p)
}

// ProjectPointInto writes ProjectPoint(a) into dst.
func (s *Space[P, V]) ProjectPointInto(dst *Point[V], a ambient.Array) error {
	if s.inplace != nil {
		return s.inplace.ProjectVectorInto(&dst.X, s.at, a)
	}
	p, err := s.ProjectPoint(a)
	if err != nil {
		return err
	}
	*dst = p
	return nil
}

// ProjectVectorInto writes ProjectVector(at, a) into dst.
func (s *Space[P, V]) ProjectVectorInto(dst *Vector[V], at Point[V], a ambient.Array) error {
	if s.inplace != nil {
		if err := s.inplace.ProjectVectorInto(&dst.Delta, s.at, a); err != nil {
			return err
		}
		dst.At = at
		return nil
	}
	v, err := s.ProjectVector(at, a)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

var _ manifold.InPlace[Point[struct{}], Vector[struct{}]] = (*Space[struct{}, struct{}])(nil)
