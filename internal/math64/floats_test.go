package math64

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestScaleAndAdd(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	out := make([]float64, 3)
	Scale(out, a, 2)
	assert.Equal(t, []float64{2, 4, 6}, out)

	Add(out, a, b)
	assert.Equal(t, []float64{5, 7, 9}, out)

	Sub(out, b, a)
	assert.Equal(t, []float64{3, 3, 3}, out)

	AddScaled(out, a, -1, a)
	assert.Equal(t, []float64{0, 0, 0}, out)

	ScaleInPlace(a, 3)
	assert.Equal(t, []float64{3, 6, 9}, a)
}

func TestAddScaledAliasing(t *testing.T) {
	a := []float64{1, 2}
	AddScaled(a, a, 2, a) // a = a + 2a
	assert.Equal(t, []float64{3, 6}, a)
}

func TestResize(t *testing.T) {
	a := make([]float64, 2, 8)
	got := Resize(a, 5)
	assert.Len(t, got, 5)
	assert.Equal(t, &a[0], &got[0], "should reuse storage when capacity allows")

	got = Resize(a, 16)
	assert.Len(t, got, 16)
}

func TestEqualWithin(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		abs, rel float64
		expected bool
	}{
		{"Exact", []float64{1, 2}, []float64{1, 2}, 0, 0, true},
		{"WithinAbs", []float64{1, 2}, []float64{1 + 1e-10, 2}, 1e-9, 0, true},
		{"OutsideAbs", []float64{1, 2}, []float64{1.1, 2}, 1e-9, 0, false},
		{"WithinRel", []float64{1e6, 0}, []float64{1e6 + 1, 0}, 0, 1e-5, true},
		{"LengthMismatch", []float64{1}, []float64{1, 2}, 1, 1, false},
		{"NegativeValues", []float64{-1}, []float64{-1 - 1e-12}, 1e-9, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EqualWithin(tt.a, tt.b, tt.abs, tt.rel))
		})
	}
}
