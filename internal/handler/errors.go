package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/plannerhq/planner/backend/internal/domain"
)

// errorDetail is the machine-readable error payload.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// respondNotFound writes a 404 with the given message (e.g. "trip not found").
// The handler is the layer that knows what was being looked up.
func respondNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{Code: "not_found", Message: message}})
}

// respondValidation writes a 422 for a request rejected before or during
// domain validation.
func respondValidation(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{Code: "validation_error", Message: message}})
}

// respondServiceError maps a service-layer error onto the response. Sentinel
// domain errors become 4xx; anything else is logged and becomes a generic 500
// so internals never leak to clients.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondNotFound(w, notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		respondValidation(w, unwrapMessage(err))
	default:
		slog.ErrorContext(r.Context(), "handler error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorDetail{Code: "internal_error", Message: "internal server error"}})
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error,
// e.g. "service.TripService.Create: validation error: invalid trip start date"
// becomes "invalid trip start date".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrValidation.Error())+2:]
	}
	return msg
}

// validationMessage renders the first validator tag failure as a readable
// message. Only the tags actually used on request DTOs are special-cased.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	e := verrs[0]
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param() + " characters"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}
