// Package euclidean implements flat R^n with the standard inner product.
//
// It is the simplest base manifold for the derived constructions in
// tangentspace and tangentbundle: exp is addition, log is subtraction,
// geodesics are straight lines and parallel transport re-attaches a vector
// unchanged. It also serves as the reference implementation of the manifold
// protocol, including the in-place operation variants and the ambient
// bridge.
package euclidean
