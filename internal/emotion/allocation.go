package emotion

import (
	"errors"
	"fmt"
	"math"
)

// ErrAllocationOutOfRange marks an allocation that violates 0 <= x[i] <= q[i]
// or a length mismatch between an allocation and the issue totals.
var ErrAllocationOutOfRange = errors.New("allocation out of range")

// ErrTooManyCandidates marks an enumeration whose candidate count would
// exceed the configured ceiling.
var ErrTooManyCandidates = errors.New("too many candidates")

// ValidateAllocation checks the allocation invariant against the totals.
func ValidateAllocation(x Allocation, q Totals) error {
	if len(x) != len(q) {
		return fmt.Errorf("%w: allocation has %d issues, totals have %d", ErrAllocationOutOfRange, len(x), len(q))
	}
	for i := range x {
		if x[i] < 0 || x[i] > q[i] {
			return fmt.Errorf("%w: issue %d share %d outside [0, %d]", ErrAllocationOutOfRange, i, x[i], q[i])
		}
	}
	return nil
}

// CandidateCount returns the size of the full allocation set, prod(q[i]+1),
// saturating at math.MaxInt when the product overflows. Negative totals
// contribute no factor here; Enumerate rejects them outright.
func CandidateCount(q Totals) int {
	count := 1
	for _, qi := range q {
		if qi <= 0 {
			continue
		}
		factor := qi + 1
		if factor <= 0 || count > math.MaxInt/factor {
			return math.MaxInt
		}
		count *= factor
	}
	return count
}

// Enumerate produces every allocation satisfying 0 <= x[i] <= q[i], the full
// Cartesian product {0..q[0]} x ... x {0..q[N-1]}. Order is deterministic:
// lexicographic with the last issue varying fastest. The product size grows
// multiplicatively, so enumeration is refused above ceiling (<= 0 means no
// limit).
func Enumerate(q Totals, ceiling int) ([]Allocation, error) {
	for i, qi := range q {
		if qi < 0 {
			return nil, fmt.Errorf("%w: issue %d total %d is negative", ErrAllocationOutOfRange, i, qi)
		}
	}

	count := CandidateCount(q)
	if ceiling > 0 && count > ceiling {
		return nil, fmt.Errorf("%w: %d candidates exceed ceiling %d", ErrTooManyCandidates, count, ceiling)
	}
	if count == math.MaxInt {
		// saturated product; the set cannot be materialized at any ceiling
		return nil, fmt.Errorf("%w: candidate count overflows", ErrTooManyCandidates)
	}

	candidates := make([]Allocation, 0, count)
	current := make(Allocation, len(q))
	for {
		x := make(Allocation, len(q))
		copy(x, current)
		candidates = append(candidates, x)

		// odometer increment, last issue fastest
		i := len(q) - 1
		for i >= 0 {
			current[i]++
			if current[i] <= q[i] {
				break
			}
			current[i] = 0
			i--
		}
		if i < 0 {
			return candidates, nil
		}
	}
}
