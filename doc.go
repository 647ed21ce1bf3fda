// Package manifold provides composable differential-geometry primitives for Go.
//
// The package defines a closed manifold protocol (exponential and logarithm
// maps, geodesics, inner products, parallel transport, and an ambient-array
// bridge) and two generic adapters that derive new manifolds from any base
// manifold implementing that protocol:
//
//   - tangentspace.Space: the tangent space at a fixed point, modeled as a
//     flat manifold in its own right, so generic manifold algorithms apply
//     uniformly to fibers.
//   - tangentbundle.Bundle: the total space of the tangent bundle, whose
//     points are pairs (point, tangent vector at that point), with a Sasaki-style
//     block-diagonal metric combining base and fiber geometry.
//
// Both adapters implement the same protocol they consume, so derived
// manifolds nest: the tangent bundle of a tangent bundle works with no
// special cases.
//
// # Quick Start
//
//	sph := sphere.New(2)                       // unit 2-sphere in R^3
//	p0, _ := sph.ProjectPoint(ambient.Leaf(0, 0, 1))
//
//	tb := tangentbundle.New[sphere.Point, sphere.Vector](sph)
//	pt, _ := tb.PointFromAmbient(ambient.Pair(
//	    ambient.Leaf(0, 0, 1),                 // base point
//	    ambient.Leaf(1, 0, 0),                 // fiber vector
//	))
//	d, _ := tb.Distance(pt, other)
//
// # Value and In-Place Forms
//
// Every hot-path operation has a value-returning form on Manifold and a
// buffer-writing form on InPlace (ExpInto, LogInto, ...). In-place forms
// write into caller-owned destinations; destinations must not alias inputs
// unless the operation's contract says otherwise.
//
// # Tolerances and Debug Checks
//
// Approximate-equality predicates take an explicit Tolerance value;
// DefaultTolerance is used where no override is given. Binary vector
// operations on the adapters require operands attached at the same point.
// That invariant is only verified when debug checks are enabled (see the
// adapters' WithChecks option); with checks disabled, behavior on mismatched
// operands is undefined.
package manifold
