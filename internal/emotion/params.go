package emotion

import (
	"errors"
	"fmt"
)

// ErrInvalidParams marks a degenerate model configuration. Degenerate
// thresholds are rejected outright, never silently clamped, because the
// piecewise scorer divides by tau1, (1 - tau2) and the sad band.
var ErrInvalidParams = errors.New("invalid model params")

// Params holds every knob of the model. All fields are plain values; the
// model re-derives everything from them on each call and keeps no state.
type Params struct {
	Totals  Totals  // per-issue quantities, fixes dimensionality
	WMax    float64 // shared clipping bound for both weight vectors
	Beta    float64 // inverse temperature of the satisfaction transform
	Tau1    float64 // anger/sad threshold
	Tau2    float64 // joy threshold
	SadBand float64 // half-width of the sad spike around tau1
	Epsilon float64 // probability smoothing constant
	Floor   float64 // per-candidate utility floor, used when FloorOn
	FloorOn bool
	Ceiling int // candidate-count safety ceiling, <= 0 means unlimited
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		Totals:  Totals{7, 5, 5, 5},
		WMax:    1.0,
		Beta:    0.8,
		Tau1:    0.4,
		Tau2:    0.7,
		SadBand: 0.02,
		Epsilon: 1e-9,
		Ceiling: 100000,
	}
}

// Validate rejects parameter sets the scorer cannot safely evaluate.
func (p Params) Validate() error {
	if len(p.Totals) < 1 {
		return fmt.Errorf("%w: at least one issue required", ErrInvalidParams)
	}
	for i, qi := range p.Totals {
		if qi < 0 {
			return fmt.Errorf("%w: issue %d total %d is negative", ErrInvalidParams, i, qi)
		}
	}
	if p.WMax < 0 {
		return fmt.Errorf("%w: w_max %f is negative", ErrInvalidParams, p.WMax)
	}
	if p.Beta < 0 {
		return fmt.Errorf("%w: beta %f is negative", ErrInvalidParams, p.Beta)
	}
	if p.Tau1 <= 0 {
		return fmt.Errorf("%w: tau1 %f must be > 0", ErrInvalidParams, p.Tau1)
	}
	if p.Tau2 >= 1 {
		return fmt.Errorf("%w: tau2 %f must be < 1", ErrInvalidParams, p.Tau2)
	}
	if p.Tau1 >= p.Tau2 {
		return fmt.Errorf("%w: tau1 %f must be < tau2 %f", ErrInvalidParams, p.Tau1, p.Tau2)
	}
	if p.SadBand <= 0 {
		return fmt.Errorf("%w: sad_band %f must be > 0", ErrInvalidParams, p.SadBand)
	}
	if p.Epsilon <= 0 {
		return fmt.Errorf("%w: epsilon %g must be > 0", ErrInvalidParams, p.Epsilon)
	}
	return nil
}
