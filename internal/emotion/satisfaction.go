package emotion

import "math"

// MaxUtility returns the maximum utility attainable over the candidate set at
// the given angle. When floorEnabled is set, each candidate's utility is
// clipped to max(u, floor) before the comparison, matching the clipping
// applied to the evaluated allocation in Satisfaction. Candidates must be
// non-empty; Enumerate always yields at least the origin allocation for any
// valid totals.
func MaxUtility(theta float64, wSelf, wOther Vector, q Totals, candidates []Allocation, floorEnabled bool, floor float64) float64 {
	uMax := math.Inf(-1)
	for _, c := range candidates {
		u := Utility(theta, wSelf, wOther, c, q)
		if floorEnabled && u < floor {
			u = floor
		}
		if u > uMax {
			uMax = u
		}
	}
	return uMax
}

// Satisfaction converts a utility into a bounded satisfaction score relative
// to the best attainable utility:
//
//	S = exp(beta * (u - uMax))
//
// S is in (0, 1] because u <= uMax by construction, and S = 1 exactly when
// the allocation attains the maximum. beta = 0 collapses S to 1 for every
// allocation; that loses discriminative power by choice of the caller.
func Satisfaction(u, uMax, beta float64) float64 {
	return math.Exp(beta * (u - uMax))
}
