package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/softpen/tonerelay/internal/apperrors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// statusForKind maps error classifications to HTTP status codes.
func statusForKind(kind apperrors.Kind) int {
	if kind == apperrors.KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeError emits the structured {error} body. Only the public message
// for the error's kind is exposed; internal detail stays server-side.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForKind(apperrors.KindOf(err)), map[string]string{
		"error": apperrors.PublicMessage(err),
	})
}
