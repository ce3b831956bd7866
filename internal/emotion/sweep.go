package emotion

import (
	"fmt"
	"math"
)

// AngleSweepRequest fixes an allocation and sweeps theta over a degree grid.
type AngleSweepRequest struct {
	WSelf    Vector
	WOther   Vector
	X        Allocation
	ThetaMin float64
	ThetaMax float64
	Step     float64
}

// AnglePoint is one sample of the probability-vs-angle curve.
type AnglePoint struct {
	ThetaDeg      float64       `json:"theta_deg"`
	Probabilities Probabilities `json:"probabilities"`
}

// SweepAngle evaluates the model at each theta on the grid for a fixed
// allocation, producing an ordered curve. The candidate set is enumerated
// once and reused across samples; only uMax is recomputed per angle, since
// it depends on theta.
func (e *Evaluator) SweepAngle(req AngleSweepRequest) ([]AnglePoint, error) {
	if req.Step <= 0 {
		return nil, fmt.Errorf("%w: sweep step %f must be > 0", ErrInvalidParams, req.Step)
	}
	if req.ThetaMin > req.ThetaMax {
		return nil, fmt.Errorf("%w: sweep range [%f, %f] is inverted", ErrInvalidParams, req.ThetaMin, req.ThetaMax)
	}
	if err := e.checkVectors(req.WSelf, req.WOther); err != nil {
		return nil, err
	}
	if err := ValidateAllocation(req.X, e.params.Totals); err != nil {
		return nil, err
	}

	candidates, err := Enumerate(e.params.Totals, e.params.Ceiling)
	if err != nil {
		return nil, err
	}

	// index the grid instead of accumulating deg, so the last sample never
	// drifts past ThetaMax; the tolerance only absorbs float error when the
	// step divides the range exactly
	steps := int(math.Floor((req.ThetaMax-req.ThetaMin)/req.Step + 1e-9))
	points := make([]AnglePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		deg := req.ThetaMin + float64(i)*req.Step
		res := e.evaluate(Radians(deg), req.WSelf, req.WOther, req.X, candidates)
		points = append(points, AnglePoint{ThetaDeg: deg, Probabilities: res.Probabilities})
	}

	if e.logger != nil {
		e.logger.Debug("angle sweep complete",
			"samples", len(points),
			"candidates", len(candidates),
		)
	}
	return points, nil
}

// AllocationSweepRequest fixes theta and classifies every feasible
// allocation.
type AllocationSweepRequest struct {
	WSelf    Vector
	WOther   Vector
	ThetaDeg float64
}

// ScatterPoint projects an allocation into the (self-value, other-value)
// plane for visualization.
type ScatterPoint struct {
	SelfValue  float64 `json:"self_value"`
	OtherValue float64 `json:"other_value"`
}

// ScatterResult groups classified allocations into one point set per label.
type ScatterResult struct {
	Points map[Label][]ScatterPoint `json:"points"`
}

// SweepAllocations evaluates every candidate allocation at a fixed angle,
// labels each with its most probable emotion (ties resolved Joy > Neutral >
// Sad > Anger), and projects it to (<wSelf, x>, <wOther, q-x>).
func (e *Evaluator) SweepAllocations(req AllocationSweepRequest) (*ScatterResult, error) {
	if err := e.checkVectors(req.WSelf, req.WOther); err != nil {
		return nil, err
	}

	candidates, err := Enumerate(e.params.Totals, e.params.Ceiling)
	if err != nil {
		return nil, err
	}

	theta := Radians(req.ThetaDeg)
	uMax := MaxUtility(theta, req.WSelf, req.WOther, e.params.Totals, candidates, e.params.FloorOn, e.params.Floor)

	result := &ScatterResult{Points: make(map[Label][]ScatterPoint, len(Labels))}
	for _, l := range Labels {
		result.Points[l] = []ScatterPoint{}
	}

	for _, x := range candidates {
		res := e.evaluateAt(theta, req.WSelf, req.WOther, x, uMax)
		label := res.Probabilities.Top()
		result.Points[label] = append(result.Points[label], ScatterPoint{
			SelfValue:  dotUnits(req.WSelf, x),
			OtherValue: dotUnits(req.WOther, Complement(e.params.Totals, x)),
		})
	}

	if e.logger != nil {
		e.logger.Debug("allocation sweep complete",
			"theta_deg", req.ThetaDeg,
			"candidates", len(candidates),
		)
	}
	return result, nil
}
