// Package tangentspace models the tangent space at a fixed point of a base
// manifold as a flat manifold in its own right.
//
// Points of the derived manifold are tangent vectors of the base manifold at
// the fixed point; its tangent vectors wrap base tangent vectors again, as
// flat displacements. The exponential map is plain addition and the
// logarithm plain subtraction, so both are exact, with no iterative solve
// and no curvature. The inner product delegates to the base manifold's
// inner product at the fixed point, which keeps the flat fiber metric
// consistent with the base manifold's Riemannian structure there. Parallel
// transport is the identity on the payload and only re-attaches the vector.
//
// The adapter implements the full manifold protocol, so any generic
// algorithm over manifolds applies uniformly to fibers.
package tangentspace
