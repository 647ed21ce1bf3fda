package tangentbundle

import (
	"github.com/tensorward/manifold"
	"github.com/tensorward/manifold/ambient"
)

// Buffer-writing forms. When the base manifold supports in-place operations
// the destination's component payloads are reused; otherwise the
// value-returning form runs and the destination is replaced wholesale.

var _ manifold.InPlace[Point[struct{}], Vector[struct{}]] = (*Bundle[struct{}, struct{}])(nil)

// ExpInto writes Exp(v) into dst.
func (b *Bundle[P, V]) ExpInto(dst *Point[V], v Vector[V]) error {
	newBase, err := b.base.Exp(v.Base)
	if err != nil {
		return err
	}
	y, err := b.base.AddVectors(v.At.X, v.Fiber.Delta)
	if err != nil {
		return err
	}
	if b.inplace != nil {
		return b.inplace.TransportInto(&dst.X, y, newBase)
	}
	yT, err := b.base.Transport(y, newBase)
	if err != nil {
		return err
	}
	dst.X = yT
	return nil
}

// LogInto writes Log(p, q) into dst.
func (b *Bundle[P, V]) LogInto(dst *Vector[V], p, q Point[V]) error {
	if b.inplace == nil {
		v, err := b.Log(p, q)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	pb := b.base.BasePoint(p.X)
	qb := b.base.BasePoint(q.X)
	if err := b.inplace.LogInto(&dst.Base, pb, qb); err != nil {
		return err
	}
	back, err := b.base.Transport(q.X, pb)
	if err != nil {
		return err
	}
	if err := b.inplace.AddVectorsInto(&dst.Fiber.Delta, back, b.base.ScaleVector(-1, p.X)); err != nil {
		return err
	}
	dst.At = p
	dst.Fiber.At = b.fiberPoint(p)
	return nil
}

// AddVectorsInto writes v + w into dst. dst may alias v.
func (b *Bundle[P, V]) AddVectorsInto(dst *Vector[V], v, w Vector[V]) error {
	if err := b.checkAttachment("tangentbundle.add", v, w); err != nil {
		return err
	}
	if b.inplace == nil {
		out, err := b.AddVectors(v, w)
		if err != nil {
			return err
		}
		*dst = out
		return nil
	}
	if err := b.inplace.AddVectorsInto(&dst.Base, v.Base, w.Base); err != nil {
		return err
	}
	if err := b.inplace.AddVectorsInto(&dst.Fiber.Delta, v.Fiber.Delta, w.Fiber.Delta); err != nil {
		return err
	}
	dst.At = v.At
	dst.Fiber.At = v.Fiber.At
	return nil
}

// ScaleVectorInto writes scalar * v into dst. dst may alias v.
func (b *Bundle[P, V]) ScaleVectorInto(dst *Vector[V], scalar float64, v Vector[V]) {
	if b.inplace == nil {
		*dst = b.ScaleVector(scalar, v)
		return
	}
	b.inplace.ScaleVectorInto(&dst.Base, scalar, v.Base)
	b.inplace.ScaleVectorInto(&dst.Fiber.Delta, scalar, v.Fiber.Delta)
	dst.At = v.At
	dst.Fiber.At = v.Fiber.At
}

// TransportInto writes Transport(v, to) into dst.
func (b *Bundle[P, V]) TransportInto(dst *Vector[V], v Vector[V], to Point[V]) error {
	if b.inplace == nil {
		out, err := b.Transport(v, to)
		if err != nil {
			return err
		}
		*dst = out
		return nil
	}
	tb := b.base.BasePoint(to.X)
	if err := b.inplace.TransportInto(&dst.Base, v.Base, tb); err != nil {
		return err
	}
	if err := b.inplace.TransportInto(&dst.Fiber.Delta, v.Fiber.Delta, tb); err != nil {
		return err
	}
	dst.At = to
	dst.Fiber.At = b.fiberPoint(to)
	return nil
}

// ZeroVectorInto writes ZeroVector(p) into dst.
func (b *Bundle[P, V]) ZeroVectorInto(dst *Vector[V], p Point[V]) {
	if b.inplace == nil {
		*dst = b.ZeroVector(p)
		return
	}
	pb := b.base.BasePoint(p.X)
	b.inplace.ZeroVectorInto(&dst.Base, pb)
	b.inplace.ZeroVectorInto(&dst.Fiber.Delta, pb)
	dst.At = p
	dst.Fiber.At = b.fiberPoint(p)
}

// ProjectPointInto writes ProjectPoint(a) into dst.
func (b *Bundle[P, V]) ProjectPointInto(dst *Point[V], a ambient.Array) error {
	if err := ambient.Check(a, b.AmbientShape()); err != nil {
		return err
	}
	at, err := b.base.ProjectPoint(a.Base())
	if err != nil {
		return err
	}
	if b.inplace != nil {
		return b.inplace.ProjectVectorInto(&dst.X, at, a.Fiber())
	}
	x, err := b.base.ProjectVector(at, a.Fiber())
	if err != nil {
		return err
	}
	dst.X = x
	return nil
}

// ProjectVectorInto writes ProjectVector(at, a) into dst.
func (b *Bundle[P, V]) ProjectVectorInto(dst *Vector[V], at Point[V], a ambient.Array) error {
	if b.inplace == nil {
		v, err := b.ProjectVector(at, a)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	if err := ambient.Check(a, b.AmbientShape()); err != nil {
		return err
	}
	pb := b.base.BasePoint(at.X)
	if err := b.inplace.ProjectVectorInto(&dst.Base, pb, a.Base()); err != nil {
		return err
	}
	if err := b.inplace.ProjectVectorInto(&dst.Fiber.Delta, pb, a.Fiber()); err != nil {
		return err
	}
	dst.At = at
	dst.Fiber.At = b.fiberPoint(at)
	return nil
}
