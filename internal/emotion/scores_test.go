package emotion

import (
	"math"
	"testing"
)

const (
	tau1    = 0.4
	tau2    = 0.7
	sadBand = 0.02
)

func TestScoreEmotionsBoundaries(t *testing.T) {
	t.Run("at tau1", func(t *testing.T) {
		sc := ScoreEmotions(tau1, tau1, tau2, sadBand)
		if sc.Sad != 1 {
			t.Errorf("expected Sad=1 at S=tau1, got %f", sc.Sad)
		}
		if sc.Anger != 0 {
			t.Errorf("expected Anger=0 at S=tau1, got %f", sc.Anger)
		}
	})

	t.Run("at tau2", func(t *testing.T) {
		sc := ScoreEmotions(tau2, tau1, tau2, sadBand)
		if sc.Joy != 0 {
			t.Errorf("expected Joy=0 at S=tau2, got %f", sc.Joy)
		}
		if sc.Neutral != 0 {
			t.Errorf("expected Neutral=0 at S=tau2, got %f", sc.Neutral)
		}
	})

	t.Run("full satisfaction", func(t *testing.T) {
		sc := ScoreEmotions(1.0, tau1, tau2, sadBand)
		if sc.Joy != 1 {
			t.Errorf("expected Joy=1 at S=1, got %f", sc.Joy)
		}
		if sc.Anger != 0 || sc.Sad != 0 || sc.Neutral != 0 {
			t.Errorf("expected only Joy at S=1, got %+v", sc)
		}
	})
}

func TestScoreEmotionsPiecewise(t *testing.T) {
	tests := []struct {
		name string
		s    float64
		want Scores
	}{
		{"deep dissatisfaction", 0.1, Scores{Anger: 0.75}},
		{"half anger", 0.2, Scores{Anger: 0.5}},
		{"sad shoulder", 0.41, Scores{Sad: 0.5, Neutral: 1.0 / 15.0}},
		{"neutral peak", 0.55, Scores{Neutral: 1}},
		{"joy midpoint", 0.85, Scores{Joy: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreEmotions(tt.s, tau1, tau2, sadBand)
			pairs := []struct {
				label Label
				got   float64
				want  float64
			}{
				{Anger, got.Anger, tt.want.Anger},
				{Sad, got.Sad, tt.want.Sad},
				{Neutral, got.Neutral, tt.want.Neutral},
				{Joy, got.Joy, tt.want.Joy},
			}
			for _, p := range pairs {
				if math.Abs(p.got-p.want) > 1e-9 {
					t.Errorf("%s: got %f, want %f", p.label, p.got, p.want)
				}
			}
		})
	}
}

func TestScoreEmotionsOverlapNearTau1(t *testing.T) {
	// just under tau1 both Anger and Sad are live
	sc := ScoreEmotions(tau1-sadBand/2, tau1, tau2, sadBand)
	if sc.Anger <= 0 {
		t.Errorf("expected Anger > 0 just below tau1, got %f", sc.Anger)
	}
	if sc.Sad <= 0 {
		t.Errorf("expected Sad > 0 just below tau1, got %f", sc.Sad)
	}
}

func TestNormalizeSimplex(t *testing.T) {
	tests := []struct {
		name string
		sc   Scores
	}{
		{"single emotion", Scores{Anger: 0.8}},
		{"overlapping", Scores{Anger: 0.05, Sad: 0.5}},
		{"all zero", Scores{}},
		{"all live", Scores{Anger: 0.1, Sad: 0.2, Neutral: 0.3, Joy: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.sc, 1e-9)
			sum := p.Anger + p.Sad + p.Neutral + p.Joy
			if math.Abs(sum-1.0) > 1e-6 {
				t.Errorf("probabilities sum to %f, want 1.0", sum)
			}
			for _, l := range Labels {
				v := p.Get(l)
				if v <= 0 || v >= 1 {
					t.Errorf("%s: probability %g outside (0,1)", l, v)
				}
			}
		})
	}
}

func TestNormalizeAllZeroIsUniform(t *testing.T) {
	p := Normalize(Scores{}, 1e-9)
	for _, l := range Labels {
		if math.Abs(p.Get(l)-0.25) > 1e-6 {
			t.Errorf("%s: expected 0.25, got %f", l, p.Get(l))
		}
	}
}

func TestTopTieBreak(t *testing.T) {
	t.Run("uniform goes to joy", func(t *testing.T) {
		p := Normalize(Scores{}, 1e-9)
		if got := p.Top(); got != Joy {
			t.Errorf("expected joy on four-way tie, got %s", got)
		}
	})

	t.Run("sad beats anger on tie", func(t *testing.T) {
		p := Normalize(Scores{Anger: 0.5, Sad: 0.5}, 1e-9)
		if got := p.Top(); got != Sad {
			t.Errorf("expected sad on anger/sad tie, got %s", got)
		}
	})

	t.Run("clear winner", func(t *testing.T) {
		p := Normalize(Scores{Anger: 0.9, Sad: 0.1}, 1e-9)
		if got := p.Top(); got != Anger {
			t.Errorf("expected anger, got %s", got)
		}
	})
}
