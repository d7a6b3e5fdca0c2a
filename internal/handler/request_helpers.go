package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MinerTapper_Go/internal/logger"
)

// UnitIDParam is the chi path parameter naming a unit
const UnitIDParam = "unitID"

// UnitActionRequest identifies the unit a command targets
type UnitActionRequest struct {
	UnitID int `json:"unit_id" validate:"required,min=1"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// parseUnitAction reads and validates the unit id path parameter.
// If it returns false the response has already been written.
func parseUnitAction(w http.ResponseWriter, r *http.Request) (UnitActionRequest, bool) {
	log := logger.FromContext(r.Context())

	raw := chi.URLParam(r, UnitIDParam)
	id, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn(LogMsgInvalidUnitID, "unit_id", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUnitID)
		return UnitActionRequest{}, false
	}

	req := UnitActionRequest{UnitID: id}
	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgInvalidUnitID, "unit_id", raw)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return UnitActionRequest{}, false
	}
	return req, true
}
