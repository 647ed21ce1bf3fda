package manifold

import "math"

// Tolerance bounds approximate-equality comparisons. Two scalars a and b are
// considered close when |a-b| <= Abs + Rel*max(|a|, |b|).
//
// Tolerance is an explicit value threaded through calls instead of
// process-wide mutable state; pass it where an operation accepts one, or
// rely on DefaultTolerance.
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance is used wherever no explicit tolerance is given.
var DefaultTolerance = Tolerance{Abs: 1e-9, Rel: 1e-9}

// Close reports whether a and b agree within the tolerance.
func (t Tolerance) Close(a, b float64) bool {
	return math.Abs(a-b) <= t.Abs+t.Rel*math.Max(math.Abs(a), math.Abs(b))
}

// CloseSlices reports whether a and b have equal length and element-wise
// agree within the tolerance.
func (t Tolerance) CloseSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !t.Close(a[i], b[i]) {
			return false
		}
	}
	return true
}

// OrDefault returns t, or DefaultTolerance when t is the zero value.
func (t Tolerance) OrDefault() Tolerance {
	if t == (Tolerance{}) {
		return DefaultTolerance
	}
	return t
}
