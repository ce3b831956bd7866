package emotion

import (
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a    Vector
		b    Vector
		want float64
	}{
		{"basic", Vector{1, 2, 3}, Vector{4, 5, 6}, 32},
		{"signed", Vector{0.5, -0.2}, Vector{4, 3}, 1.4},
		{"zero", Vector{0, 0}, Vector{9, 9}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestComplement(t *testing.T) {
	rest := Complement(Totals{7, 5, 5, 5}, Allocation{3, 2, 2, 1})
	want := []int{4, 3, 3, 4}
	for i := range want {
		if rest[i] != want[i] {
			t.Errorf("issue %d: got %d, want %d", i, rest[i], want[i])
		}
	}
}

func TestClampWeights(t *testing.T) {
	got := ClampWeights(Vector{-3.5, 0.2, 3.5, 1.0}, 1.0)
	want := Vector{-1.0, 0.2, 1.0, 1.0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("component %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestClampWeightsIdempotent(t *testing.T) {
	w := Vector{-7.2, 0.3, 4.4, -0.9}
	once := ClampWeights(w, 2.5)
	twice := ClampWeights(once, 2.5)
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("component %d: clamp not idempotent: %f vs %f", i, once[i], twice[i])
		}
	}
}

func TestSnapWeights(t *testing.T) {
	got := SnapWeights(Vector{0.4, 0.6, -3.7, 2.5}, 3.0)
	want := Vector{0, 1, -3, 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("component %d: got %f, want %f", i, got[i], want[i])
		}
	}
}
