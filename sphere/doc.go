// Package sphere implements the unit n-sphere embedded in R^(n+1).
//
// Points are unit vectors in the embedding space; tangent vectors at p are
// embedding vectors orthogonal to p. Exponential and logarithm maps, the
// geodesic distance and parallel transport all have closed forms, which
// makes the sphere the standard curved base manifold for exercising the
// derived constructions in tangentspace and tangentbundle.
package sphere
