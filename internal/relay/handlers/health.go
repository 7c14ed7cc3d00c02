package handlers

import (
	"net/http"
	"time"

	"github.com/softpen/tonerelay/internal/version"
)

// HealthHandler handles GET /health
func HealthHandler(env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"env":       env,
			"version":   version.Version,
		})
	}
}
