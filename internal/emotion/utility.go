package emotion

import "math"

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Utility computes the directional utility of an allocation:
//
//	cos(theta)*<wOther, q-x> + sin(theta)*<wSelf, x>
//
// theta is in radians and both weight vectors are assumed already clamped.
// At theta=90deg the value collapses to <wSelf, x>, at theta=0 to
// <wOther, q-x>; intermediate angles blend both. The allocation invariant is
// the caller's, q-x is not re-checked here.
func Utility(theta float64, wSelf, wOther Vector, x Allocation, q Totals) float64 {
	return math.Cos(theta)*dotUnits(wOther, Complement(q, x)) + math.Sin(theta)*dotUnits(wSelf, x)
}
