package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/destiny-matrix/internal/api/shared"
	"github.com/phrazzld/destiny-matrix/internal/service"
)

// MatrixHandler handles matrix-related HTTP requests
type MatrixHandler struct {
	matrixService service.MatrixService
}

// NewMatrixHandler creates a new MatrixHandler
func NewMatrixHandler(matrixService service.MatrixService) *MatrixHandler {
	return &MatrixHandler{matrixService: matrixService}
}

// Routes mounts the matrix endpoints on r.
func (h *MatrixHandler) Routes(r chi.Router) {
	r.Post("/matrix", h.Calculate)
	r.Post("/matrix/batch", h.CalculateBatch)
	r.Get("/matrix/{birthdate}", h.GetMatrix)
	r.Post("/interpretations", h.Interpret)
	r.Get("/positions", h.ListPositions)
}

// Calculate handles POST /api/matrix requests
func (h *MatrixHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	h.calculate(w, r, req.BirthDate)
}

// GetMatrix handles GET /api/matrix/{birthdate} requests
func (h *MatrixHandler) GetMatrix(w http.ResponseWriter, r *http.Request) {
	birthDate, err := url.PathUnescape(chi.URLParam(r, "birthdate"))
	if err != nil || birthDate == "" {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid birth date", err)
		return
	}

	h.calculate(w, r, birthDate)
}

func (h *MatrixHandler) calculate(w http.ResponseWriter, r *http.Request, birthDate string) {
	reading, err := h.matrixService.Calculate(r.Context(), birthDate)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate matrix")
		return
	}

	shared.Respond(w, r, http.StatusOK, reading)
}

// CalculateBatch handles POST /api/matrix/batch requests
func (h *MatrixHandler) CalculateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	items, err := h.matrixService.CalculateBatch(r.Context(), req.BirthDates)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate batch")
		return
	}

	shared.Respond(w, r, http.StatusOK, batchToResponse(items))
}

// Interpret handles POST /api/interpretations requests
func (h *MatrixHandler) Interpret(w http.ResponseWriter, r *http.Request) {
	var req InterpretRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	reading, err := h.matrixService.Interpret(r.Context(), req.Matrix)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to interpret matrix")
		return
	}

	shared.Respond(w, r, http.StatusOK, reading)
}

// ListPositions handles GET /api/positions requests
func (h *MatrixHandler) ListPositions(w http.ResponseWriter, r *http.Request) {
	shared.Respond(w, r, http.StatusOK, PositionsResponse{Positions: h.matrixService.Positions()})
}
