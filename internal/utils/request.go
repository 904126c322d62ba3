package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"inventory-manager/internal/utils/response"

	"github.com/go-playground/validator/v10"
)

// ParseAndValidate is the handler-side gate: a request failing either
// step is rejected before any service or store call is made.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		slog.Warn("Validation failed", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(errors.New("validation failed: invalid input data")))
		return false
	}

	return true

}
