package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kensei0527/likelihood-plot/internal/config"
	"github.com/kensei0527/likelihood-plot/internal/emotion"
)

// ModelHandler serves the emotion model to the chart frontend. Configured
// defaults seed every omitted request field, so a bare request evaluates the
// reference scenario.
type ModelHandler struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewModelHandler(cfg *config.Config, logger *slog.Logger) *ModelHandler {
	return &ModelHandler{cfg: cfg, logger: logger}
}

// ModelOverrides lets a request adjust individual knobs without restating the
// whole parameter set. Nil fields keep the configured value.
type ModelOverrides struct {
	Totals       []int    `json:"totals,omitempty"`
	WMax         *float64 `json:"w_max,omitempty"`
	Beta         *float64 `json:"beta,omitempty"`
	Tau1         *float64 `json:"tau1,omitempty"`
	Tau2         *float64 `json:"tau2,omitempty"`
	SadBand      *float64 `json:"sad_band,omitempty"`
	UtilityFloor *float64 `json:"utility_floor,omitempty"`
	FloorEnabled *bool    `json:"floor_enabled,omitempty"`
}

func (h *ModelHandler) params(ov ModelOverrides) emotion.Params {
	p := h.cfg.Params()
	if ov.Totals != nil {
		p.Totals = emotion.Totals(ov.Totals)
	}
	if ov.WMax != nil {
		p.WMax = *ov.WMax
	}
	if ov.Beta != nil {
		p.Beta = *ov.Beta
	}
	if ov.Tau1 != nil {
		p.Tau1 = *ov.Tau1
	}
	if ov.Tau2 != nil {
		p.Tau2 = *ov.Tau2
	}
	if ov.SadBand != nil {
		p.SadBand = *ov.SadBand
	}
	if ov.UtilityFloor != nil {
		p.Floor = *ov.UtilityFloor
	}
	if ov.FloorEnabled != nil {
		p.FloorOn = *ov.FloorEnabled
	}
	return p
}

// weights applies defaults and the configured clamping mode to a request's
// weight vectors. The core never sees unclamped weights.
func (h *ModelHandler) weights(wSelf, wOther []float64, wMax float64) (emotion.Vector, emotion.Vector) {
	if wSelf == nil {
		wSelf = h.cfg.Model.WSelf
	}
	if wOther == nil {
		wOther = h.cfg.Model.WOther
	}
	if h.cfg.Model.IntegerWeights {
		return emotion.SnapWeights(wSelf, wMax), emotion.SnapWeights(wOther, wMax)
	}
	return emotion.ClampWeights(wSelf, wMax), emotion.ClampWeights(wOther, wMax)
}

type EvaluateRequest struct {
	ThetaDeg   float64   `json:"theta_deg"`
	WSelf      []float64 `json:"w_self,omitempty"`
	WOther     []float64 `json:"w_other,omitempty"`
	Allocation []int     `json:"allocation"`
	ModelOverrides
}

// Evaluate computes the emotion distribution for one proposal.
// POST /api/v1/evaluate
func (h *ModelHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Allocation == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "allocation required"})
		return
	}

	p := h.params(req.ModelOverrides)
	eval, err := emotion.New(p, h.logger)
	if err != nil {
		writeError(w, err)
		return
	}

	wSelf, wOther := h.weights(req.WSelf, req.WOther, p.WMax)
	result, err := eval.Evaluate(emotion.Request{
		ThetaDeg: req.ThetaDeg,
		WSelf:    wSelf,
		WOther:   wOther,
		X:        emotion.Allocation(req.Allocation),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type SweepAngleRequest struct {
	WSelf      []float64 `json:"w_self,omitempty"`
	WOther     []float64 `json:"w_other,omitempty"`
	Allocation []int     `json:"allocation"`
	ThetaMin   *float64  `json:"theta_min,omitempty"`
	ThetaMax   *float64  `json:"theta_max,omitempty"`
	ThetaStep  *float64  `json:"theta_step,omitempty"`
	ModelOverrides
}

type SweepAngleResponse struct {
	SweepID string               `json:"sweep_id"`
	Points  []emotion.AnglePoint `json:"points"`
}

// SweepAngle produces the probability-vs-angle curve for a fixed allocation.
// POST /api/v1/sweep/angle
func (h *ModelHandler) SweepAngle(w http.ResponseWriter, r *http.Request) {
	var req SweepAngleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Allocation == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "allocation required"})
		return
	}

	p := h.params(req.ModelOverrides)
	eval, err := emotion.New(p, h.logger)
	if err != nil {
		writeError(w, err)
		return
	}

	grid := h.cfg.Sweep
	sweep := emotion.AngleSweepRequest{
		X:        emotion.Allocation(req.Allocation),
		ThetaMin: grid.ThetaMin,
		ThetaMax: grid.ThetaMax,
		Step:     grid.ThetaStep,
	}
	sweep.WSelf, sweep.WOther = h.weights(req.WSelf, req.WOther, p.WMax)
	if req.ThetaMin != nil {
		sweep.ThetaMin = *req.ThetaMin
	}
	if req.ThetaMax != nil {
		sweep.ThetaMax = *req.ThetaMax
	}
	if req.ThetaStep != nil {
		sweep.Step = *req.ThetaStep
	}

	points, err := eval.SweepAngle(sweep)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SweepAngleResponse{
		SweepID: uuid.New().String(),
		Points:  points,
	})
}

type SweepAllocationsRequest struct {
	WSelf    []float64 `json:"w_self,omitempty"`
	WOther   []float64 `json:"w_other,omitempty"`
	ThetaDeg float64   `json:"theta_deg"`
	ModelOverrides
}

type SweepAllocationsResponse struct {
	SweepID string                                   `json:"sweep_id"`
	Points  map[emotion.Label][]emotion.ScatterPoint `json:"points"`
}

// SweepAllocations classifies every feasible allocation at a fixed angle.
// POST /api/v1/sweep/allocations
func (h *ModelHandler) SweepAllocations(w http.ResponseWriter, r *http.Request) {
	var req SweepAllocationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	p := h.params(req.ModelOverrides)
	eval, err := emotion.New(p, h.logger)
	if err != nil {
		writeError(w, err)
		return
	}

	wSelf, wOther := h.weights(req.WSelf, req.WOther, p.WMax)
	result, err := eval.SweepAllocations(emotion.AllocationSweepRequest{
		WSelf:    wSelf,
		WOther:   wOther,
		ThetaDeg: req.ThetaDeg,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SweepAllocationsResponse{
		SweepID: uuid.New().String(),
		Points:  result.Points,
	})
}

// Defaults reports the configured parameter set so the frontend can seed and
// reset its controls.
// GET /api/v1/defaults
func (h *ModelHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totals":            h.cfg.Model.Totals,
		"w_self":            h.cfg.Model.WSelf,
		"w_other":           h.cfg.Model.WOther,
		"w_max":             h.cfg.Model.WMax,
		"integer_weights":   h.cfg.Model.IntegerWeights,
		"beta":              h.cfg.Model.Beta,
		"tau1":              h.cfg.Model.Tau1,
		"tau2":              h.cfg.Model.Tau2,
		"sad_band":          h.cfg.Model.SadBand,
		"epsilon":           h.cfg.Model.Epsilon,
		"floor_enabled":     h.cfg.Model.FloorEnabled,
		"utility_floor":     h.cfg.Model.UtilityFloor,
		"candidate_ceiling": h.cfg.Model.CandidateCeiling,
		"sweep": map[string]float64{
			"theta_min":  h.cfg.Sweep.ThetaMin,
			"theta_max":  h.cfg.Sweep.ThetaMax,
			"theta_step": h.cfg.Sweep.ThetaStep,
		},
	})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, emotion.ErrAllocationOutOfRange), errors.Is(err, emotion.ErrInvalidParams):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, emotion.ErrTooManyCandidates):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
