package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ideaboard/ideaboard-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"message": msg}
}

func fieldErrorResponse(msg, field string) map[string]string {
	return map[string]string{"message": msg, "field": field}
}

// writeValidationError writes a 400 with the offending field name when the
// error carries one.
func writeValidationError(w http.ResponseWriter, vErr *service.ValidationError) {
	if vErr.Field != "" {
		writeJSON(w, http.StatusBadRequest, fieldErrorResponse(vErr.Message, vErr.Field))
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse(vErr.Message))
}

// writeInternalError logs the fault and hides its detail from the caller.
func writeInternalError(w http.ResponseWriter, op string, err error) {
	slog.Error("unexpected store failure", "op", op, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
}

// ideaIDParam parses the {id} URL parameter.
func ideaIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
