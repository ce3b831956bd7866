package emotion

import (
	"fmt"
	"log/slog"
)

// Request bundles the inputs of a single-point evaluation. Weight vectors
// are used as given; callers clamp (or snap) them first.
type Request struct {
	ThetaDeg float64
	WSelf    Vector
	WOther   Vector
	X        Allocation
}

// Result is the full breakdown of one evaluation.
type Result struct {
	Utility       float64       `json:"utility"`
	MaxUtility    float64       `json:"max_utility"`
	Satisfaction  float64       `json:"satisfaction"`
	Scores        Scores        `json:"scores"`
	Probabilities Probabilities `json:"probabilities"`
}

// Evaluator runs the emotion model for a fixed parameter set. Every method
// is a pure function of its inputs; the evaluator holds no mutable state
// between calls.
type Evaluator struct {
	params Params
	logger *slog.Logger
}

// New creates an Evaluator, rejecting degenerate parameter sets.
func New(params Params, logger *slog.Logger) (*Evaluator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{params: params, logger: logger}, nil
}

// Params returns the evaluator's parameter set.
func (e *Evaluator) Params() Params {
	return e.params
}

// Evaluate computes the emotion probability distribution for one proposal.
func (e *Evaluator) Evaluate(req Request) (Result, error) {
	if err := e.checkVectors(req.WSelf, req.WOther); err != nil {
		return Result{}, err
	}
	if err := ValidateAllocation(req.X, e.params.Totals); err != nil {
		return Result{}, err
	}

	candidates, err := Enumerate(e.params.Totals, e.params.Ceiling)
	if err != nil {
		return Result{}, err
	}

	return e.evaluate(Radians(req.ThetaDeg), req.WSelf, req.WOther, req.X, candidates), nil
}

// evaluate is the shared inner step once the candidate set is in hand.
func (e *Evaluator) evaluate(theta float64, wSelf, wOther Vector, x Allocation, candidates []Allocation) Result {
	uMax := MaxUtility(theta, wSelf, wOther, e.params.Totals, candidates, e.params.FloorOn, e.params.Floor)
	return e.evaluateAt(theta, wSelf, wOther, x, uMax)
}

// evaluateAt scores one allocation against a precomputed maximum, so sweeps
// can enumerate once and reuse uMax across samples.
func (e *Evaluator) evaluateAt(theta float64, wSelf, wOther Vector, x Allocation, uMax float64) Result {
	p := e.params

	u := Utility(theta, wSelf, wOther, x, p.Totals)
	if p.FloorOn && u < p.Floor {
		u = p.Floor
	}

	s := Satisfaction(u, uMax, p.Beta)
	scores := ScoreEmotions(s, p.Tau1, p.Tau2, p.SadBand)
	probs := Normalize(scores, p.Epsilon)

	return Result{
		Utility:       u,
		MaxUtility:    uMax,
		Satisfaction:  s,
		Scores:        scores,
		Probabilities: probs,
	}
}

func (e *Evaluator) checkVectors(wSelf, wOther Vector) error {
	n := len(e.params.Totals)
	if len(wSelf) != n {
		return fmt.Errorf("%w: w_self has %d issues, totals have %d", ErrAllocationOutOfRange, len(wSelf), n)
	}
	if len(wOther) != n {
		return fmt.Errorf("%w: w_other has %d issues, totals have %d", ErrAllocationOutOfRange, len(wOther), n)
	}
	return nil
}
