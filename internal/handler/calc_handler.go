package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-calc-api/internal/middleware"
	"go-calc-api/internal/model"
	"go-calc-api/internal/service"
	"go-calc-api/internal/token"
	"go-calc-api/pkg/apierror"
)

type CalcHandler struct {
	service *service.CalcService
}

func NewCalcHandler(service *service.CalcService) *CalcHandler {
	return &CalcHandler{service: service}
}

func callerClaims(w http.ResponseWriter, r *http.Request) (*token.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("MISSING_CREDENTIAL", "authentication required", "", http.StatusUnauthorized))
		return nil, false
	}
	return claims, true
}

// Calculate computes and persists a scenario owned by the caller.
func (h *CalcHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var payload model.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	scenario, err := h.service.CalculateAndSave(r.Context(), claims.Subject, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, scenario)
}

// ComputeOnly runs the same computation without persisting anything.
func (h *CalcHandler) ComputeOnly(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var payload model.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	sum, division, err := h.service.Compute(payload.A, payload.B)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.CalcResult{
		Sum:      sum,
		Division: division,
		User:     claims.Email,
	})
}

func (h *CalcHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	scenarios, err := h.service.ListScenarios(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, scenarios)
}

func (h *CalcHandler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, apierror.Validation("scenario id must be numeric", chi.URLParam(r, "id")))
		return
	}

	if err := h.service.DeleteScenario(r.Context(), claims.Subject, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
