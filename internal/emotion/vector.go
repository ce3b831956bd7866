package emotion

import "math"

// Vector is a fixed-length signed weight vector, one component per issue.
type Vector []float64

// Totals holds the total quantity available per issue. Its length fixes the
// dimensionality of every other vector in the model.
type Totals []int

// Allocation is the "self" party's share per issue. Valid allocations satisfy
// 0 <= x[i] <= q[i]; the other party's share is always the complement q-x.
type Allocation []int

// Dot returns the dot product of two weight vectors.
func Dot(a, b Vector) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// dotUnits reduces a weight vector against an integer share vector.
func dotUnits(w Vector, units []int) float64 {
	var sum float64
	for i := range w {
		sum += w[i] * float64(units[i])
	}
	return sum
}

// Complement returns the other party's share q-x, element-wise.
func Complement(q Totals, x Allocation) []int {
	rest := make([]int, len(q))
	for i := range q {
		rest[i] = q[i] - x[i]
	}
	return rest
}

// ClampWeights returns a copy of w with each component clipped into
// [-wMax, wMax]. Clamping is idempotent.
func ClampWeights(w Vector, wMax float64) Vector {
	out := make(Vector, len(w))
	for i, v := range w {
		out[i] = clamp(v, -wMax, wMax)
	}
	return out
}

// SnapWeights rounds each component to the nearest integer and then clips it
// into [-wMax, wMax]. This is the integer-stepped editing mode; callers pick
// it over ClampWeights, the core never requires it.
func SnapWeights(w Vector, wMax float64) Vector {
	out := make(Vector, len(w))
	for i, v := range w {
		out[i] = clamp(math.Round(v), -wMax, wMax)
	}
	return out
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
