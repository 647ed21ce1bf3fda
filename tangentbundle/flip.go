package tangentbundle

import "github.com/tensorward/manifold/tangentspace"

// CanonicalFlip swaps the roles of the attachment payload and the base
// motion of a bundle tangent vector: the result is attached at the bundle
// point whose fiber payload is v's base motion, moves along the base by v's
// former attachment payload, and keeps the fiber displacement. The flip is
// pure payload reassignment with no recomputation, and an involution:
// CanonicalFlip(CanonicalFlip(v)) == v.
//
// It is exposed as a structural utility for callers building cotangent or
// symplectic constructions on top of the bundle.
func (b *Bundle[P, V]) CanonicalFlip(v Vector[V]) Vector[V] {
	at := Point[V]{X: v.Base}
	return Vector[V]{
		At:   at,
		Base: v.At.X,
		Fiber: tangentspace.Vector[V]{
			At:    tangentspace.Point[V]{X: v.Base},
			Delta: v.Fiber.Delta,
		},
	}
}
