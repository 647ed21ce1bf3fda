// Package testutil provides testing utilities for the manifold packages.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator plus helpers
// for producing random points and tangent vectors on the reference base
// manifolds.
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(3)          // uniform [-1, 1) coordinates
//	p := rng.UnitVector(3)      // uniform direction on the unit sphere
//	u := rng.TangentTo(p)       // random direction orthogonal to p
package testutil
