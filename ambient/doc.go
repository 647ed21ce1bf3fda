// Package ambient provides the flat numeric boundary representation for
// manifold points and tangent vectors.
//
// An Array is either a leaf (a dense float64 slice) or a pair of sub-arrays.
// Leaf arrays encode points and vectors of base manifolds; pair arrays encode
// tangent-bundle points and vectors as (base encoding, fiber encoding), and
// nest recursively for bundles over bundles.
//
// Shapes describe the structure of an Array without its data, and every
// conversion routine validates the incoming shape against the manifold's
// ambient shape, failing fast with ErrShapeMismatch on malformed input.
package ambient
