package embedding

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   []float64
		expect float64
	}{
		{
			name:   "identical vectors",
			a:      []float64{1, 2, 3},
			b:      []float64{1, 2, 3},
			expect: 1,
		},
		{
			name:   "opposite vectors",
			a:      []float64{1, 0},
			b:      []float64{-1, 0},
			expect: -1,
		},
		{
			name:   "orthogonal vectors",
			a:      []float64{1, 0},
			b:      []float64{0, 1},
			expect: 0,
		},
		{
			name:   "zero vector yields zero",
			a:      []float64{0, 0, 0},
			b:      []float64{1, 2, 3},
			expect: 0,
		},
		{
			name:   "empty vectors yield zero",
			a:      nil,
			b:      []float64{1},
			expect: 0,
		},
		{
			name:   "mismatched lengths use shorter prefix",
			a:      []float64{1, 0, 5, 5, 5},
			b:      []float64{1, 0},
			expect: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestCosineStaysInRange(t *testing.T) {
	t.Parallel()

	// Accumulated floating point error must never push the result
	// outside [-1,1].
	a := make([]float64, 1000)
	for i := range a {
		a[i] = 0.1
	}
	got := Cosine(a, a)
	if got > 1 || got < -1 {
		t.Fatalf("cosine out of range: %v", got)
	}
}
