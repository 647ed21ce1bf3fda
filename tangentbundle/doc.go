// Package tangentbundle models the total space of the tangent bundle of a
// base manifold: pairs (point, tangent vector at that point) as a manifold
// of twice the base dimension.
//
// The metric is the Sasaki-style block-diagonal combination of the base
// inner product and the flat fiber inner product; horizontal and fiber
// directions are treated as orthogonal, with no cross terms. The
// exponential map moves along the base geodesic and parallel-transports the
// flat-exponentiated fiber payload to the new base point, so a bundle
// point's fiber component always lives in the tangent space at its own base
// point.
//
// Distance uses a transported-difference construction: the fiber term
// transports one point's fiber vector to the other's base point and takes
// the norm of the difference. This is a tractable proxy, NOT the true
// geodesic distance on the bundle for curved base manifolds; callers that
// need exact bundle geodesic distance must compute it elsewhere.
//
// The adapter implements the full manifold protocol over any base that
// does, so bundles nest: the tangent bundle of a tangent bundle needs no
// special cases.
package tangentbundle
