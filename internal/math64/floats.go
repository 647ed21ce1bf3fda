// Package math64 provides float64 vector kernels for geometry code.
// This is an internal package - external users should go through the
// manifold implementations.
package math64

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var distance float64
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float64, scalar float64) {
	for i := range a {
		a[i] *= scalar
	}
}

// Scale writes scalar*a into dst. dst may alias a.
func Scale(dst, a []float64, scalar float64) {
	for i := range a {
		dst[i] = scalar * a[i]
	}
}

// Add writes a+b into dst. dst may alias a or b.
func Add(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Sub writes a-b into dst. dst may alias a or b.
func Sub(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// AddScaled writes a + scalar*b into dst. dst may alias a or b.
func AddScaled(dst, a []float64, scalar float64, b []float64) {
	for i := range a {
		dst[i] = a[i] + scalar*b[i]
	}
}

// Resize returns a slice of length n, reusing a's storage when capacity
// allows.
func Resize(a []float64, n int) []float64 {
	if cap(a) >= n {
		return a[:n]
	}
	return make([]float64, n)
}

// EqualWithin reports whether a and b have equal length and element-wise
// agree within abs + rel*max(|x|, |y|).
func EqualWithin(a, b []float64, abs, rel float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		x, y := a[i], b[i]
		if x < 0 {
			x = -x
		}
		if y < 0 {
			y = -y
		}
		m := x
		if y > m {
			m = y
		}
		if d > abs+rel*m {
			return false
		}
	}

	return true
}
