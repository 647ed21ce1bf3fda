package ambient

import (
	"fmt"
	"strings"
)

// Array is the flat numeric encoding of a point or tangent vector at the
// system boundary. An Array is either a leaf carrying dense data, or a pair
// of sub-arrays (base encoding, fiber encoding) for bundle constructions.
//
// Arrays are plain values; Clone before mutating shared data.
type Array struct {
	// Data holds the scalars of a leaf array. Nil for pair arrays.
	Data []float64 `json:"data,omitempty"`
	// Sub holds exactly two sub-arrays for a pair array. Nil for leaves.
	Sub []Array `json:"sub,omitempty"`
}

// Leaf returns a leaf array over the given scalars. The slice is used
// directly, not copied.
func Leaf(data ...float64) Array {
	return Array{Data: data}
}

// Pair returns a pair array combining a base encoding and a fiber encoding.
func Pair(base, fiber Array) Array {
	return Array{Sub: []Array{base, fiber}}
}

// IsPair reports whether a is a pair array.
func (a Array) IsPair() bool { return a.Sub != nil }

// Base returns the base component of a pair array.
func (a Array) Base() Array { return a.Sub[0] }

// Fiber returns the fiber component of a pair array.
func (a Array) Fiber() Array { return a.Sub[1] }

// Shape returns the structural shape of a.
func (a Array) Shape() Shape {
	if a.IsPair() {
		return PairShape(a.Sub[0].Shape(), a.Sub[1].Shape())
	}
	return LeafShape(len(a.Data))
}

// Clone returns a deep copy of a.
func (a Array) Clone() Array {
	if a.IsPair() {
		sub := make([]Array, len(a.Sub))
		for i := range a.Sub {
			sub[i] = a.Sub[i].Clone()
		}
		return Array{Sub: sub}
	}
	data := make([]float64, len(a.Data))
	copy(data, a.Data)
	return Array{Data: data}
}

// CopyFrom writes src's scalars into a's existing storage. The shapes of a
// and src must match; on mismatch a is left untouched and ErrShapeMismatch
// is returned. a must not alias src.
func (a *Array) CopyFrom(src Array) error {
	if got, want := src.Shape(), a.Shape(); !got.Equal(want) {
		return &ErrShapeMismatch{Expected: want, Actual: got}
	}
	a.copyFrom(src)
	return nil
}

func (a *Array) copyFrom(src Array) {
	if a.IsPair() {
		for i := range a.Sub {
			a.Sub[i].copyFrom(src.Sub[i])
		}
		return
	}
	copy(a.Data, src.Data)
}

// EqualWithin reports whether a and b have the same shape and element-wise
// agree within abs + rel*max(|x|, |y|).
func (a Array) EqualWithin(b Array, abs, rel float64) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	if a.IsPair() {
		return a.Sub[0].EqualWithin(b.Sub[0], abs, rel) &&
			a.Sub[1].EqualWithin(b.Sub[1], abs, rel)
	}
	for i := range a.Data {
		x, y := a.Data[i], b.Data[i]
		d := x - y
		if d < 0 {
			d = -d
		}
		m := x
		if m < 0 {
			m = -m
		}
		if n := y; n < 0 && -n > m {
			m = -n
		} else if n > m {
			m = n
		}
		if d > abs+rel*m {
			return false
		}
	}
	return true
}

// Shape describes the structure of an Array without its data. A Shape is
// either a leaf of a given length or a pair of sub-shapes.
type Shape struct {
	// Len is the scalar count of a leaf shape.
	Len int `json:"len,omitempty"`
	// Sub holds exactly two sub-shapes for a pair shape. Nil for leaves.
	Sub []Shape `json:"sub,omitempty"`
}

// LeafShape returns the shape of a leaf array with n scalars.
func LeafShape(n int) Shape { return Shape{Len: n} }

// PairShape returns the shape combining a base shape and a fiber shape.
func PairShape(base, fiber Shape) Shape {
	return Shape{Sub: []Shape{base, fiber}}
}

// IsPair reports whether s is a pair shape.
func (s Shape) IsPair() bool { return s.Sub != nil }

// Equal reports whether s and o describe the same structure.
func (s Shape) Equal(o Shape) bool {
	if s.IsPair() != o.IsPair() {
		return false
	}
	if s.IsPair() {
		return s.Sub[0].Equal(o.Sub[0]) && s.Sub[1].Equal(o.Sub[1])
	}
	return s.Len == o.Len
}

// Size returns the total scalar count of an array of this shape.
func (s Shape) Size() int {
	if s.IsPair() {
		return s.Sub[0].Size() + s.Sub[1].Size()
	}
	return s.Len
}

// Zero returns a zero-filled array of this shape.
func (s Shape) Zero() Array {
	if s.IsPair() {
		return Pair(s.Sub[0].Zero(), s.Sub[1].Zero())
	}
	return Array{Data: make([]float64, s.Len)}
}

// String renders the shape, e.g. "(3)" or "((3),(3))".
func (s Shape) String() string {
	var b strings.Builder
	s.render(&b)
	return b.String()
}

func (s Shape) render(b *strings.Builder) {
	b.WriteByte('(')
	if s.IsPair() {
		s.Sub[0].render(b)
		b.WriteByte(',')
		s.Sub[1].render(b)
	} else {
		fmt.Fprintf(b, "%d", s.Len)
	}
	b.WriteByte(')')
}

// ErrShapeMismatch indicates ambient data whose shape does not match the
// shape a conversion routine requires.
type ErrShapeMismatch struct {
	Expected Shape
	Actual   Shape
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("ambient shape mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Check validates a against the expected shape.
func Check(a Array, want Shape) error {
	if got := a.Shape(); !got.Equal(want) {
		return &ErrShapeMismatch{Expected: want, Actual: got}
	}
	return nil
}
