// Package server exposes the cost engine over a JSON API for dashboard
// front ends. The scenario store is scoped to the handler, i.e. one server
// process is one interactive session.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"

	"github.com/urbancost/parkcost/internal/analysis"
	"github.com/urbancost/parkcost/internal/model"
	"github.com/urbancost/parkcost/internal/scenario"
	"github.com/urbancost/parkcost/pkg/constants"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string

	// The store itself is not safe for concurrent use; the handler is the
	// synchronization boundary.
	mu    sync.Mutex
	store *scenario.Store
}

// NewHandler constructs the HTTP handler that serves the cost engine API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
		store:          scenario.NewStore(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/estimate", h.handleEstimate)
	mux.HandleFunc("/api/sensitivity", h.handleSensitivity)
	mux.HandleFunc("/api/montecarlo", h.handleMonteCarlo)
	mux.HandleFunc("/api/scenarios", h.handleScenarios)
	mux.HandleFunc("/api/scenarios/export", h.handleScenarioExport)
	mux.HandleFunc("/api/workplace", h.handleWorkplace)
	mux.HandleFunc("/api/urban", h.handleUrban)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type estimateRequest struct {
	Parameters model.CostParameters `json:"parameters"`
}

type sensitivityRequest struct {
	Parameters model.CostParameters `json:"parameters"`
	Parameter  string               `json:"parameter"`
}

type sensitivityResponse struct {
	Parameter string                      `json:"parameter"`
	Points    []analysis.SensitivityPoint `json:"points"`
}

type monteCarloRequest struct {
	Parameters model.CostParameters `json:"parameters"`
	Count      int                  `json:"count"`
	Seed       *int64               `json:"seed,omitempty"`
}

type saveScenarioRequest struct {
	Name        string               `json:"name"`
	ParkingType string               `json:"parkingType"`
	Parameters  model.CostParameters `json:"parameters"`
}

type removeScenariosRequest struct {
	Names []string `json:"names"`
}

type workplaceRequest struct {
	Parameters   model.WorkplaceParameters    `json:"parameters"`
	Alternatives *model.AlternativeParameters `json:"alternatives,omitempty"`
}

type workplaceResponse struct {
	Breakdown  model.WorkplaceBreakdown     `json:"breakdown"`
	Comparison *model.AlternativeComparison `json:"comparison,omitempty"`
}

type urbanRequest struct {
	Street         *model.StreetParameters `json:"street,omitempty"`
	AlternativeUse model.AlternativeUse    `json:"alternativeUse,omitempty"`
	Demand         *model.DemandParameters `json:"demand,omitempty"`
}

type urbanResponse struct {
	Street *model.StreetAnalysis `json:"street,omitempty"`
	Demand *model.DemandEstimate `json:"demand,omitempty"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if !h.decodeJSON(w, r, &req, "server.handleEstimate") {
		return
	}

	breakdown, err := model.ComputeBreakdown(req.Parameters)
	if err != nil {
		h.respondModelError(w, err, "server.handleEstimate")
		return
	}

	h.writeJSON(w, http.StatusOK, breakdown)
}

func (h *handler) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	var req sensitivityRequest
	if !h.decodeJSON(w, r, &req, "server.handleSensitivity") {
		return
	}

	points, err := analysis.RunSensitivity(h.logger, req.Parameters, req.Parameter)
	if err != nil {
		h.respondModelError(w, err, "server.handleSensitivity")
		return
	}

	h.writeJSON(w, http.StatusOK, sensitivityResponse{Parameter: req.Parameter, Points: points})
}

func (h *handler) handleMonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req monteCarloRequest
	if !h.decodeJSON(w, r, &req, "server.handleMonteCarlo") {
		return
	}

	sim := analysis.NewSimulator(h.logger, seededRNG(req.Seed))
	samples, err := sim.Run(req.Parameters, req.Count)
	if err != nil {
		h.respondModelError(w, err, "server.handleMonteCarlo")
		return
	}

	h.writeJSON(w, http.StatusOK, analysis.Summarize(samples))
}

func (h *handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.mu.Lock()
		scenarios := h.store.List()
		h.mu.Unlock()
		h.writeJSON(w, http.StatusOK, scenarios)

	case http.MethodPost:
		var req saveScenarioRequest
		if !h.decodeBody(w, r, &req, "server.handleScenarios") {
			return
		}
		breakdown, err := model.ComputeBreakdown(req.Parameters)
		if err != nil {
			h.respondModelError(w, err, "server.handleScenarios")
			return
		}

		h.mu.Lock()
		h.store.Save(req.Name, req.ParkingType, breakdown, req.Parameters)
		saved := h.store.List()
		h.mu.Unlock()

		h.logger.Info("scenario saved",
			zap.String("op", "server.handleScenarios"),
			zap.String("scenario", req.Name),
			zap.Int("stored", len(saved)),
		)
		h.writeJSON(w, http.StatusOK, saved[len(saved)-1])

	case http.MethodDelete:
		var req removeScenariosRequest
		if !h.decodeBody(w, r, &req, "server.handleScenarios") {
			return
		}

		h.mu.Lock()
		h.store.Remove(req.Names)
		remaining := h.store.Len()
		h.mu.Unlock()

		h.writeJSON(w, http.StatusOK, map[string]int{"remaining": remaining})

	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleScenarioExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	data, err := h.store.ExportCSV()
	h.mu.Unlock()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to export scenarios: %v", err), "server.handleScenarioExport")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="parking_cost_scenarios.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write CSV response",
			zap.String("op", "server.handleScenarioExport"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleWorkplace(w http.ResponseWriter, r *http.Request) {
	var req workplaceRequest
	if !h.decodeJSON(w, r, &req, "server.handleWorkplace") {
		return
	}

	breakdown, err := model.ComputeWorkplaceBreakdown(req.Parameters)
	if err != nil {
		h.respondModelError(w, err, "server.handleWorkplace")
		return
	}

	resp := workplaceResponse{Breakdown: breakdown}
	if req.Alternatives != nil {
		comparison, err := model.CompareAlternatives(req.Parameters, *req.Alternatives, breakdown)
		if err != nil {
			h.respondModelError(w, err, "server.handleWorkplace")
			return
		}
		resp.Comparison = &comparison
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleUrban(w http.ResponseWriter, r *http.Request) {
	var req urbanRequest
	if !h.decodeJSON(w, r, &req, "server.handleUrban") {
		return
	}

	var resp urbanResponse
	if req.Street != nil {
		street, err := model.AnalyzeStreet(*req.Street, req.AlternativeUse)
		if err != nil {
			h.respondModelError(w, err, "server.handleUrban")
			return
		}
		resp.Street = &street
	}
	if req.Demand != nil {
		demand, err := model.EstimateDemand(*req.Demand)
		if err != nil {
			h.respondModelError(w, err, "server.handleUrban")
			return
		}
		resp.Demand = &demand
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeJSON decodes a POST body into dst, handling method and payload
// errors. It reports whether the caller should proceed.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	return h.decodeBody(w, r, dst, op)
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

// seededRNG returns a deterministic source for an explicit seed, or nil to
// let the simulator install its default time-seeded source.
func seededRNG(seed *int64) *rand.Rand {
	if seed == nil {
		return nil
	}
	return rand.New(rand.NewSource(*seed))
}

func (h *handler) respondModelError(w http.ResponseWriter, err error, op string) {
	status := http.StatusInternalServerError
	if errors.Is(err, model.ErrInvalidParameter) {
		status = http.StatusBadRequest
	}
	h.respondError(w, status, err.Error(), op)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
