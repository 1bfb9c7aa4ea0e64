package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/bkcalfee/colony-planner/internal/catalog"
	"github.com/bkcalfee/colony-planner/internal/planner"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires planner and catalog dependencies into HTTP handlers.
type Handler struct {
	planner  planner.Planner
	catalogs catalog.Set

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(p planner.Planner, catalogs catalog.Set, opts ...HandlerOption) *Handler {
	h := &Handler{
		planner:  p,
		catalogs: catalogs,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := catalogResponse{
		Foods:     h.catalogs.Foods,
		Buildings: h.catalogs.Buildings,
		Materials: h.catalogs.Materials,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if req.Duplicants < 0 || req.Days < 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "duplicants and days must be non-negative integers")
		return
	}
	if strings.TrimSpace(req.Food) == "" {
		writeError(w, http.StatusBadRequest, "Invalid request", "food must be set")
		return
	}
	for id, count := range req.Buildings {
		if count < 0 {
			writeError(w, http.StatusBadRequest, "Invalid request", "building count for "+id+" must be non-negative")
			return
		}
	}

	start := time.Now()
	result, err := h.planner.ComputeRequirements(planner.Request{
		Duplicants: req.Duplicants,
		Days:       req.Days,
		Food:       req.Food,
		Buildings:  req.Buildings,
	}, h.catalogs.Foods, h.catalogs.Buildings)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, planner.ErrUnknownFood) {
			suggestion := "Known foods: " + strings.Join(h.catalogs.Foods.IDs(), ", ")
			writeError(w, http.StatusUnprocessableEntity, "Unknown food", err.Error(), suggestion)
			return
		}
		writeInternalError(w, err)
		return
	}

	resp := planResponse{
		Duplicants:        result.Duplicants,
		Days:              result.Days,
		Food:              foodNeedPayload{ID: result.Food.ID, Units: result.Food.Units, Unit: result.Food.Unit},
		Materials:         result.Materials,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type planRequest struct {
	Duplicants int            `json:"duplicants"`
	Days       int            `json:"days"`
	Food       string         `json:"food"`
	Buildings  map[string]int `json:"buildings"`
}

type foodNeedPayload struct {
	ID    string `json:"id"`
	Units int    `json:"units"`
	Unit  string `json:"unit"`
}

type planResponse struct {
	Duplicants        int                `json:"duplicants"`
	Days              int                `json:"days"`
	Food              foodNeedPayload    `json:"food"`
	Materials         map[string]float64 `json:"materials"`
	CalculationTimeMs int64              `json:"calculationTimeMs"`
}

type catalogResponse struct {
	Foods     catalog.FoodCatalog     `json:"foods"`
	Buildings catalog.BuildingCatalog `json:"buildings"`
	Materials catalog.MaterialCatalog `json:"materials"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
