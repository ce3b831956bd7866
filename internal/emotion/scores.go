package emotion

import "math"

// Label is one of the four fixed emotion categories.
type Label string

const (
	Anger   Label = "anger"
	Sad     Label = "sad"
	Neutral Label = "neutral"
	Joy     Label = "joy"
)

// Labels lists every emotion label in ascending-satisfaction order.
var Labels = []Label{Anger, Sad, Neutral, Joy}

// tieBreak is the documented argmax priority on exact probability ties.
var tieBreak = []Label{Joy, Neutral, Sad, Anger}

// Scores holds the four unnormalized piecewise-linear emotion intensities.
// They are not mutually exclusive: near tau1 both Anger and Sad can be
// nonzero at once.
type Scores struct {
	Anger   float64 `json:"anger"`
	Sad     float64 `json:"sad"`
	Neutral float64 `json:"neutral"`
	Joy     float64 `json:"joy"`
}

// ScoreEmotions maps a satisfaction value in (0, 1] to the four raw
// intensities.
//
//	Anger   rises linearly to 1 as S -> 0, zero for S >= tau1
//	Sad     triangular spike centered at tau1, half-width sadBand
//	Neutral triangular bump on (tau1, tau2), peak 1 at the midpoint
//	Joy     rises linearly from 0 at tau2 to 1 at S = 1
//
// Threshold invariants (0 < tau1 < tau2 < 1, sadBand > 0) are enforced by
// Params.Validate before any scoring happens.
func ScoreEmotions(s, tau1, tau2, sadBand float64) Scores {
	var sc Scores

	sc.Anger = clamp01((tau1 - s) / tau1)

	if d := math.Abs(s - tau1); d <= sadBand {
		sc.Sad = 1 - d/sadBand
	}

	if s > tau1 && s < tau2 {
		mid := (tau1 + tau2) / 2
		half := (tau2 - tau1) / 2
		sc.Neutral = clamp01(1 - math.Abs(s-mid)/half)
	}

	sc.Joy = clamp01((s - tau2) / (1 - tau2))

	return sc
}

// Probabilities is the four-label emotion distribution. Every component is
// strictly positive and the four sum to 1 up to rounding.
type Probabilities struct {
	Anger   float64 `json:"anger"`
	Sad     float64 `json:"sad"`
	Neutral float64 `json:"neutral"`
	Joy     float64 `json:"joy"`
}

// Normalize converts raw scores into a probability distribution with uniform
// epsilon smoothing: P_k = (score_k + eps) / sum(score_j + eps). The
// smoothing keeps the result well-defined when all four scores are 0 (pure
// uniform in that case).
func Normalize(sc Scores, eps float64) Probabilities {
	total := sc.Anger + sc.Sad + sc.Neutral + sc.Joy + 4*eps
	return Probabilities{
		Anger:   (sc.Anger + eps) / total,
		Sad:     (sc.Sad + eps) / total,
		Neutral: (sc.Neutral + eps) / total,
		Joy:     (sc.Joy + eps) / total,
	}
}

// Get returns the probability for a label.
func (p Probabilities) Get(l Label) float64 {
	switch l {
	case Anger:
		return p.Anger
	case Sad:
		return p.Sad
	case Neutral:
		return p.Neutral
	default:
		return p.Joy
	}
}

// Top returns the most probable label. Exact ties resolve by the fixed
// priority Joy > Neutral > Sad > Anger.
func (p Probabilities) Top() Label {
	best := tieBreak[0]
	for _, l := range tieBreak[1:] {
		if p.Get(l) > p.Get(best) {
			best = l
		}
	}
	return best
}
